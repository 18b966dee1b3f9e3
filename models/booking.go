package models

import "time"

// Booking status values. A booking request produces exactly one confirmed
// record; recurrence-generated siblings are scheduled.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusScheduled = "scheduled"
)

// Payment status values. Records are always pending at creation.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// BookingRequest carries the client's selections for a new booking.
type BookingRequest struct {
	CompanionID        string `json:"companionId"`
	Date               string `json:"date"` // Calendar date in "YYYY-MM-DD" format
	Time               string `json:"time"` // Time slot, e.g. "6:00 PM"
	PackageID          string `json:"package,omitempty"`
	Location           string `json:"location,omitempty"`
	Notes              string `json:"notes,omitempty"`
	IsRecurring        bool   `json:"isRecurring"`
	RecurringFrequency string `json:"recurringFrequency,omitempty"`
	UseLoyaltyPoints   bool   `json:"useLoyaltyPoints"`
	LoyaltyPointsUsed  int    `json:"loyaltyPointsUsed"`
}

// BookingRecord is a fully assembled booking, ready for persistence.
type BookingRecord struct {
	ID                 string    `bson:"id" json:"id"`
	CompanionID        string    `bson:"companion_id" json:"companionId"`
	RequesterID        string    `bson:"requester_id" json:"requesterId"`
	ScheduledAt        time.Time `bson:"scheduled_at" json:"scheduledAt"`
	Time               string    `bson:"time" json:"time"` // Display slot the date starts at
	PackageID          string    `bson:"package_id,omitempty" json:"package,omitempty"`
	PackageName        string    `bson:"package_name" json:"packageName"`
	Location           string    `bson:"location" json:"location"`
	Notes              string    `bson:"notes,omitempty" json:"notes,omitempty"`
	IsRecurring        bool      `bson:"is_recurring" json:"isRecurring"`
	RecurringFrequency string    `bson:"recurring_frequency,omitempty" json:"recurringFrequency,omitempty"`
	BasePrice          float64   `bson:"base_price" json:"basePrice"`
	LoyaltyDiscount    float64   `bson:"loyalty_discount" json:"loyaltyDiscount"`
	LoyaltyPointsUsed  int       `bson:"loyalty_points_used" json:"loyaltyPointsUsed"`
	TotalPrice         float64   `bson:"total_price" json:"totalPrice"`
	Status             string    `bson:"status" json:"status"`
	PaymentStatus      string    `bson:"payment_status" json:"paymentStatus"`
	CreatedAt          time.Time `bson:"created_at" json:"createdAt"`
}

// BookingSet is the output of booking construction: the confirmed primary
// record plus any recurrence-generated siblings.
type BookingSet struct {
	Primary   BookingRecord   `json:"booking"`
	Recurring []BookingRecord `json:"recurringBookings"`
}
