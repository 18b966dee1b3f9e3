package notification

import (
	"context"

	"amora/models"
)

// NotificationService defines methods for sending FCM pushes around
// bookings. All sends are best-effort; booking construction never fails
// because a push could not be delivered.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, record models.BookingRecord) error
	SendDateReminder(ctx context.Context, payload models.ReminderPayload) error
}
