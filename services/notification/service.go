package notification

import (
	"context"
	"fmt"

	"amora/models"
	"amora/services/companion"
	"amora/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// DefaultNotificationService sends pushes to companions' devices via FCM.
type DefaultNotificationService struct {
	Companions companion.Service
	Logger     *zap.Logger
}

func NewDefaultNotificationService(companions companion.Service, logger *zap.Logger) (*DefaultNotificationService, error) {
	if companions == nil {
		return nil, fmt.Errorf("notification service initialization error: companion service is nil")
	}
	return &DefaultNotificationService{
		Companions: companions,
		Logger:     logger,
	}, nil
}

// SendBookingConfirmation pushes a confirmation to the booked companion.
func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, record models.BookingRecord) error {
	title := "New date booked"
	body := fmt.Sprintf("You have a %s on %s at %s (%s).",
		record.PackageName,
		record.ScheduledAt.Format("Jan 2"),
		record.Time,
		record.Location,
	)

	data := map[string]string{
		"bookingId": record.ID,
		"status":    record.Status,
	}
	return s.push(ctx, record.CompanionID, title, body, data)
}

// SendDateReminder pushes a queued reminder for an upcoming date.
func (s *DefaultNotificationService) SendDateReminder(ctx context.Context, payload models.ReminderPayload) error {
	data := map[string]string{
		"reminderId": payload.ReminderID,
		"bookingId":  payload.BookingID,
		"fireDate":   payload.FireDate,
	}
	return s.push(ctx, payload.CompanionID, payload.Title, payload.Body, data)
}

func (s *DefaultNotificationService) push(ctx context.Context, companionID, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		s.Logger.Debug("push skipped: FCM not configured", zap.String("companionID", companionID))
		return nil
	}

	profile, err := s.Companions.GetProfile(ctx, companionID)
	if err != nil || profile.FCMToken == "" {
		// No push target; fail silently.
		return nil
	}

	msg := &messaging.Message{
		Token: profile.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message to companion %s: %w", companionID, err)
	}
	return nil
}
