package bookingRepo

import (
	"context"
	"errors"
	"time"

	"amora/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a single booking record.
func (r *mongoBookingRepo) Create(ctx context.Context, record models.BookingRecord) error {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	_, err := r.coll.InsertOne(ctx, record)
	return err
}

// CreateMany inserts a batch of booking records (a recurring set).
func (r *mongoBookingRepo) CreateMany(ctx context.Context, records []models.BookingRecord) error {
	if len(records) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(records))
	for _, rec := range records {
		docs = append(docs, rec)
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

// GetByID returns a booking record by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.BookingRecord, error) {
	var record models.BookingRecord
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// GetByRequester fetches all bookings made by a specific requester,
// newest first.
func (r *mongoBookingRepo) GetByRequester(ctx context.Context, requesterID string) ([]models.BookingRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "scheduled_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"requester_id": requesterID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetByCompanion fetches all bookings for a specific companion.
func (r *mongoBookingRepo) GetByCompanion(ctx context.Context, companionID string) ([]models.BookingRecord, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"companion_id": companionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var records []models.BookingRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// UpdatePaymentStatus sets the payment status on a booking record.
func (r *mongoBookingRepo) UpdatePaymentStatus(ctx context.Context, id, status string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"payment_status": status}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("booking not found")
	}
	return nil
}
