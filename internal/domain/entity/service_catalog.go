package entity

import (
	"time"

	"gorm.io/gorm"
)

// ServiceCatalogEntry represents a bookable service from the reference table
type ServiceCatalogEntry struct {
	ID              uint
	Name            string
	DurationMinutes int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt
}
