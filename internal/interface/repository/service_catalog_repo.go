package repository

import (
	"context"
	"time"

	"linebook-service/internal/domain/entity"
	"linebook-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormServiceCatalogRepo implements the ServiceCatalogRepository interface
type GormServiceCatalogRepo struct {
	db *gorm.DB
}

// NewGormServiceCatalogRepo creates a new GORM service catalog repository
func NewGormServiceCatalogRepo(db *gorm.DB) repository.ServiceCatalogRepository {
	return &GormServiceCatalogRepo{
		db: db,
	}
}

// Services GORM model for database mapping
type Services struct {
	ID              uint           `gorm:"primaryKey"`
	Name            string         `gorm:"column:name;unique"`
	DurationMinutes int            `gorm:"column:duration_minutes"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName overrides the default table name
func (Services) TableName() string {
	return "m_services"
}

// MigrateServiceCatalog creates the reference table when it does not exist
func MigrateServiceCatalog(db *gorm.DB) error {
	return db.AutoMigrate(&Services{})
}

// GetAll returns every catalog entry ordered by name
func (r *GormServiceCatalogRepo) GetAll(ctx context.Context) ([]*entity.ServiceCatalogEntry, error) {
	var rows []Services
	result := r.db.WithContext(ctx).Order("name").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*entity.ServiceCatalogEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, toCatalogEntry(row))
	}
	return entries, nil
}

// Convert GORM model to domain entity
func toCatalogEntry(row Services) *entity.ServiceCatalogEntry {
	return &entity.ServiceCatalogEntry{
		ID:              row.ID,
		Name:            row.Name,
		DurationMinutes: row.DurationMinutes,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
		DeletedAt:       row.DeletedAt,
	}
}
