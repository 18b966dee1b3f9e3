package companion

import (
	"context"

	"amora/models"
)

// Service exposes the companion directory: profile lookups for pricing and
// display, plus the minimal registration surface.
type Service interface {
	GetProfile(ctx context.Context, id string) (*models.CompanionProfile, error)
	ListProfiles(ctx context.Context) ([]models.CompanionProfile, error)
	RegisterProfile(ctx context.Context, profile models.CompanionProfile) (string, error)
	UpdateFCMToken(ctx context.Context, id, token string) error
}
