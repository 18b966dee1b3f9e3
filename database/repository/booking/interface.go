package bookingRepo

import (
	"context"

	"amora/database"
	"amora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines data access for booking records.
type BookingRepository interface {
	Create(ctx context.Context, record models.BookingRecord) error
	CreateMany(ctx context.Context, records []models.BookingRecord) error
	GetByID(ctx context.Context, id string) (*models.BookingRecord, error)
	GetByRequester(ctx context.Context, requesterID string) ([]models.BookingRecord, error)
	GetByCompanion(ctx context.Context, companionID string) ([]models.BookingRecord, error)
	UpdatePaymentStatus(ctx context.Context, id, status string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a BookingRepository backed by MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database("amora")
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
