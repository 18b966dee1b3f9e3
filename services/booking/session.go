// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"

	"amora/models"
	"amora/utils"

	"github.com/google/uuid"
)

// DefaultWizardSessionService implements WizardSessionService. Each session
// parks one Wizard in Redis under a generated session ID; every mutation is
// load, apply, store, so a rejected transition leaves the stored state
// untouched.
type DefaultWizardSessionService struct {
	Catalog    *Catalog
	BookingSvc BookingService
}

// StartSession creates a new wizard for the given companion, assigns it a
// unique session ID and stores it in Redis.
func (s *DefaultWizardSessionService) StartSession(companionID, requesterID string) (string, *Wizard, error) {
	sessionID := uuid.New().String()
	wizard := NewWizard(companionID, requesterID)

	if err := s.save(sessionID, wizard); err != nil {
		return "", nil, err
	}
	return sessionID, wizard, nil
}

// GetSession returns the current wizard state for a session.
func (s *DefaultWizardSessionService) GetSession(sessionID string) (*Wizard, error) {
	return s.load(sessionID)
}

func (s *DefaultWizardSessionService) SelectPackage(sessionID, packageID string) (*Wizard, error) {
	return s.mutate(sessionID, func(w *Wizard) error {
		return w.SelectPackage(s.Catalog, packageID)
	})
}

func (s *DefaultWizardSessionService) SelectSchedule(sessionID, date, timeSlot string) (*Wizard, error) {
	return s.mutate(sessionID, func(w *Wizard) error {
		return w.SelectSchedule(date, timeSlot)
	})
}

func (s *DefaultWizardSessionService) SetDetails(sessionID string, details WizardDetails) (*Wizard, error) {
	return s.mutate(sessionID, func(w *Wizard) error {
		return w.SetDetails(details)
	})
}

func (s *DefaultWizardSessionService) Advance(sessionID string) (*Wizard, error) {
	return s.mutate(sessionID, func(w *Wizard) error {
		return w.Advance()
	})
}

func (s *DefaultWizardSessionService) Retreat(sessionID string) (*Wizard, error) {
	return s.mutate(sessionID, func(w *Wizard) error {
		return w.Retreat()
	})
}

// SubmitSession finalizes the wizard by driving the booking service with the
// accumulated selections. On success the session is cleared; on failure the
// stored state is preserved so the requester can correct and retry.
func (s *DefaultWizardSessionService) SubmitSession(ctx context.Context, sessionID string) (*models.BookingSet, error) {
	wizard, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}

	set, err := wizard.Submit(func(req models.BookingRequest) (*models.BookingSet, error) {
		return s.BookingSvc.CreateBooking(ctx, req, wizard.RequesterID)
	})
	if err != nil {
		return nil, err
	}

	cacheClient := utils.GetSessionCacheClient()
	cacheClient.Del(context.Background(), utils.SessionCachePrefix+sessionID)
	return set, nil
}

// CancelSession allows the client to explicitly abandon a wizard session.
func (s *DefaultWizardSessionService) CancelSession(sessionID string) error {
	cacheClient := utils.GetSessionCacheClient()
	if err := cacheClient.Del(context.Background(), utils.SessionCachePrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel wizard session: %w", err)
	}
	return nil
}

func (s *DefaultWizardSessionService) mutate(sessionID string, apply func(*Wizard) error) (*Wizard, error) {
	wizard, err := s.load(sessionID)
	if err != nil {
		return nil, err
	}
	if err := apply(wizard); err != nil {
		return nil, err
	}
	if err := s.save(sessionID, wizard); err != nil {
		return nil, err
	}
	return wizard, nil
}

func (s *DefaultWizardSessionService) load(sessionID string) (*Wizard, error) {
	ctx := context.Background()
	cacheClient := utils.GetSessionCacheClient()

	data, err := cacheClient.Get(ctx, utils.SessionCachePrefix+sessionID).Result()
	if err != nil {
		return nil, ErrSessionNotFound
	}
	var wizard Wizard
	if err := json.Unmarshal([]byte(data), &wizard); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &wizard, nil
}

func (s *DefaultWizardSessionService) save(sessionID string, wizard *Wizard) error {
	ctx := context.Background()
	cacheClient := utils.GetSessionCacheClient()

	data, err := json.Marshal(wizard)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := cacheClient.Set(ctx, utils.SessionCachePrefix+sessionID, data, utils.SessionCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}
