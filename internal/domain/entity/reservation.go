package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Reservation Status
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Reservation represents a single booking made through the bot
type Reservation struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"userId"`
	UserName  string             `bson:"userName"`
	Date      time.Time          `bson:"date"`
	Time      string             `bson:"time"`
	Service   string             `bson:"service"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}
