package companionRepo

import (
	"context"
	"errors"
	"time"

	"amora/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// GetByID returns a companion profile by its ID.
func (r *mongoCompanionRepo) GetByID(ctx context.Context, id string) (*models.CompanionProfile, error) {
	var profile models.CompanionProfile
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&profile)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns all companion profiles.
func (r *mongoCompanionRepo) List(ctx context.Context) ([]models.CompanionProfile, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []models.CompanionProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Create inserts a new companion profile and returns its ID.
func (r *mongoCompanionRepo) Create(ctx context.Context, profile models.CompanionProfile) (string, error) {
	if profile.ID == "" {
		profile.ID = uuid.New().String()
	}
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, profile)
	if err != nil {
		return "", err
	}
	return profile.ID, nil
}

// UpdateFCMToken stores the push token for a companion's device.
func (r *mongoCompanionRepo) UpdateFCMToken(ctx context.Context, id, token string) error {
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"fcm_token": token, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("companion not found")
	}
	return nil
}
