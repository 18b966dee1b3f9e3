package booking

import (
	"context"
	"time"

	bookingRepo "amora/database/repository/booking"
	"amora/models"
	"amora/services/companion"
	"amora/services/notification"
	"amora/services/tasks"

	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService. It resolves the hourly
// fallback rate from the companion directory, builds the record set, hands
// it to the repository, and fires best-effort confirmation pushes and
// reminders.
type DefaultBookingService struct {
	Catalog      *Catalog
	Builder      *RecordBuilder
	CompanionDir companion.Service
	Repo         bookingRepo.BookingRepository
	Notifier     notification.NotificationService
	Reminders    *tasks.ReminderScheduler
	Logger       *zap.Logger

	// Now is the clock used for record IDs and timestamps. Defaults to
	// time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// CreateBooking validates and builds the booking set, persists it and kicks
// off the downstream side effects. Directory failures never fail a booking;
// they only drop the rate to the policy default.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req models.BookingRequest, requesterID string) (*models.BookingSet, error) {
	hourlyRate := DefaultHourlyRate
	if req.CompanionID != "" {
		profile, err := s.CompanionDir.GetProfile(ctx, req.CompanionID)
		if err != nil {
			s.Logger.Warn("companion lookup failed, using default rate",
				zap.String("companionID", req.CompanionID), zap.Error(err))
		} else if profile.HourlyRate > 0 {
			hourlyRate = profile.HourlyRate
		}
	}

	set, err := s.Builder.Build(req, requesterID, hourlyRate, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.Repo.Create(ctx, set.Primary); err != nil {
		return nil, err
	}
	if err := s.Repo.CreateMany(ctx, set.Recurring); err != nil {
		return nil, err
	}

	s.Logger.Info("booking created",
		zap.String("bookingID", set.Primary.ID),
		zap.String("companionID", set.Primary.CompanionID),
		zap.Float64("totalPrice", set.Primary.TotalPrice),
		zap.Bool("isRecurring", set.Primary.IsRecurring),
		zap.Int("recurringCount", len(set.Recurring)),
	)

	if s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmation(ctx, set.Primary); err != nil {
			s.Logger.Warn("confirmation push failed", zap.String("bookingID", set.Primary.ID), zap.Error(err))
		}
	}
	if s.Reminders != nil {
		for _, record := range append([]models.BookingRecord{set.Primary}, set.Recurring...) {
			if err := s.Reminders.ScheduleDateReminder(record); err != nil {
				s.Logger.Warn("reminder enqueue failed", zap.String("bookingID", record.ID), zap.Error(err))
			}
		}
	}

	return set, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.BookingRecord, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) ListForRequester(ctx context.Context, requesterID string) ([]models.BookingRecord, error) {
	return s.Repo.GetByRequester(ctx, requesterID)
}

func (s *DefaultBookingService) PackageDeals() []models.PackageDeal {
	return s.Catalog.Deals()
}

func (s *DefaultBookingService) AvailableTimeSlots() []string {
	out := make([]string, len(TimeSlots))
	copy(out, TimeSlots)
	return out
}
