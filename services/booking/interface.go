package booking

import (
	"context"

	"amora/models"
)

// BookingService is the booking construction entry point consumed by the
// HTTP layer and the wizard session service.
type BookingService interface {
	CreateBooking(ctx context.Context, req models.BookingRequest, requesterID string) (*models.BookingSet, error)
	GetBooking(ctx context.Context, id string) (*models.BookingRecord, error)
	ListForRequester(ctx context.Context, requesterID string) ([]models.BookingRecord, error)
	PackageDeals() []models.PackageDeal
	AvailableTimeSlots() []string
}

// WizardSessionService manages the stateful booking wizard parked in Redis
// between requests.
type WizardSessionService interface {
	StartSession(companionID, requesterID string) (string, *Wizard, error)
	GetSession(sessionID string) (*Wizard, error)
	SelectPackage(sessionID, packageID string) (*Wizard, error)
	SelectSchedule(sessionID, date, timeSlot string) (*Wizard, error)
	SetDetails(sessionID string, details WizardDetails) (*Wizard, error)
	Advance(sessionID string) (*Wizard, error)
	Retreat(sessionID string) (*Wizard, error)
	SubmitSession(ctx context.Context, sessionID string) (*models.BookingSet, error)
	CancelSession(sessionID string) error
}
