package companionRepo

import (
	"context"

	"amora/database"
	"amora/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CompanionRepository defines data access for companion profiles.
type CompanionRepository interface {
	GetByID(ctx context.Context, id string) (*models.CompanionProfile, error)
	List(ctx context.Context) ([]models.CompanionProfile, error)
	Create(ctx context.Context, profile models.CompanionProfile) (string, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
}

type mongoCompanionRepo struct {
	coll *mongo.Collection
}

// NewMongoCompanionRepo returns a CompanionRepository backed by MongoDB.
func NewMongoCompanionRepo() CompanionRepository {
	db := database.MongoClient.Database("amora")
	return &mongoCompanionRepo{
		coll: db.Collection("companions"),
	}
}
