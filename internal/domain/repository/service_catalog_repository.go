package repository

import (
	"context"

	"linebook-service/internal/domain/entity"
)

// ServiceCatalogRepository defines the interface for the bookable-services
// reference table
type ServiceCatalogRepository interface {
	GetAll(ctx context.Context) ([]*entity.ServiceCatalogEntry, error)
}
