package repository

import (
	"context"
	"time"

	"linebook-service/internal/domain/entity"
)

// ReservationRepository defines the interface for reservation storage operations
type ReservationRepository interface {
	// Create persists a new reservation, assigning its ID and timestamps
	Create(ctx context.Context, reservation *entity.Reservation) error

	// FindPendingByUser returns all pending reservations for a user in store order
	FindPendingByUser(ctx context.Context, userID string) ([]*entity.Reservation, error)

	// FindOnePending returns at most one pending reservation for the user on
	// the exact date, ties broken by store iteration order; nil when absent
	FindOnePending(ctx context.Context, userID string, date time.Time) (*entity.Reservation, error)

	// Save persists mutations to an existing reservation, refreshing UpdatedAt
	Save(ctx context.Context, reservation *entity.Reservation) error
}
