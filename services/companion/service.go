package companion

import (
	"context"
	"fmt"

	companionRepo "amora/database/repository/companion"
	"amora/models"
)

// DefaultService implements Service on top of the companion repository.
type DefaultService struct {
	Repo companionRepo.CompanionRepository
}

func (s *DefaultService) GetProfile(ctx context.Context, id string) (*models.CompanionProfile, error) {
	if id == "" {
		return nil, fmt.Errorf("companion id is required")
	}
	profile, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch companion %s: %w", id, err)
	}
	return profile, nil
}

func (s *DefaultService) ListProfiles(ctx context.Context) ([]models.CompanionProfile, error) {
	profiles, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companions: %w", err)
	}
	return profiles, nil
}

func (s *DefaultService) RegisterProfile(ctx context.Context, profile models.CompanionProfile) (string, error) {
	if profile.Name == "" {
		return "", fmt.Errorf("companion name is required")
	}
	if profile.HourlyRate < 0 {
		return "", fmt.Errorf("hourly rate cannot be negative")
	}
	id, err := s.Repo.Create(ctx, profile)
	if err != nil {
		return "", fmt.Errorf("failed to register companion: %w", err)
	}
	return id, nil
}

func (s *DefaultService) UpdateFCMToken(ctx context.Context, id, token string) error {
	if err := s.Repo.UpdateFCMToken(ctx, id, token); err != nil {
		return fmt.Errorf("failed to update push token for companion %s: %w", id, err)
	}
	return nil
}
