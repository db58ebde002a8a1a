package repository

import (
	"context"
	"fmt"
	"time"

	"linebook-service/internal/domain/entity"
	"linebook-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoReservationRepo implements the ReservationRepository interface
type MongoReservationRepo struct {
	collection *mongo.Collection
}

// NewMongoReservationRepo creates a new MongoDB reservation repository
func NewMongoReservationRepo(db *mongo.Database) repository.ReservationRepository {
	collection := db.Collection("reservations")

	// Create indexes for better performance
	ctx := context.Background()

	// Compound index for listing a user's pending reservations
	userStatusIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "status", Value: 1},
		},
	}

	// Compound index for the cancel lookup by exact date
	userDateStatusIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "date", Value: 1},
			{Key: "status", Value: 1},
		},
	}

	// Index on date for reporting queries
	dateIndex := mongo.IndexModel{
		Keys: bson.M{"date": 1},
	}

	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		userStatusIndex,
		userDateStatusIndex,
		dateIndex,
	})

	return &MongoReservationRepo{
		collection: collection,
	}
}

// Create persists a new reservation, assigning its ID and timestamps
func (r *MongoReservationRepo) Create(ctx context.Context, reservation *entity.Reservation) error {
	if reservation.ID.IsZero() {
		reservation.ID = primitive.NewObjectID()
	}
	if reservation.Status == "" {
		reservation.Status = entity.StatusPending
	}

	now := time.Now()
	reservation.CreatedAt = now
	reservation.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, reservation); err != nil {
		return fmt.Errorf("failed to create reservation: %w", err)
	}
	return nil
}

// FindPendingByUser finds all pending reservations for a user in store order
func (r *MongoReservationRepo) FindPendingByUser(ctx context.Context, userID string) ([]*entity.Reservation, error) {
	filter := bson.M{
		"userId": userID,
		"status": entity.StatusPending,
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find reservations: %w", err)
	}
	defer cursor.Close(ctx)

	var reservations []*entity.Reservation
	if err := cursor.All(ctx, &reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

// FindOnePending finds at most one pending reservation matching the exact
// date. Ties among same-day duplicates are broken by store iteration order.
func (r *MongoReservationRepo) FindOnePending(ctx context.Context, userID string, date time.Time) (*entity.Reservation, error) {
	filter := bson.M{
		"userId": userID,
		"date":   date,
		"status": entity.StatusPending,
	}

	var reservation entity.Reservation
	err := r.collection.FindOne(ctx, filter).Decode(&reservation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find reservation: %w", err)
	}

	return &reservation, nil
}

// Save persists mutations to an existing reservation, refreshing UpdatedAt
func (r *MongoReservationRepo) Save(ctx context.Context, reservation *entity.Reservation) error {
	reservation.UpdatedAt = time.Now()

	result, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"_id": reservation.ID},
		reservation,
	)
	if err != nil {
		return fmt.Errorf("failed to save reservation: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("no reservation found with id: %s", reservation.ID.Hex())
	}

	return nil
}
