package models

// ReminderPayload is the queued payload for a date reminder push.
type ReminderPayload struct {
	ReminderID  string `json:"reminderId"`
	BookingID   string `json:"bookingId"`
	CompanionID string `json:"companionId"`
	Title       string `json:"title"`
	Body        string `json:"body"`
	FireDate    string `json:"fireDate"`
}
