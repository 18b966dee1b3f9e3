package booking

import (
	"fmt"
	"time"

	"amora/models"
)

// DefaultLocation is recorded when the requester leaves the meeting place
// open.
const DefaultLocation = "To be decided"

// dateLayout is the wire format for booking dates.
const dateLayout = "2006-01-02"

// slotLayout parses the display time slots ("6:00 PM").
const slotLayout = "3:04 PM"

// RecordBuilder assembles canonical booking records from validated requests.
// It performs no I/O; persistence and notification belong to the caller.
type RecordBuilder struct {
	Catalog *Catalog
}

// Build validates req and produces the primary booking record plus any
// recurrence-generated siblings. Validation failures abort before any
// pricing or recurrence work, so a failed call produces zero records.
// Given identical inputs and the same now, the output is identical.
func (b *RecordBuilder) Build(req models.BookingRequest, requesterID string, hourlyRate float64, now time.Time) (*models.BookingSet, error) {
	if req.CompanionID == "" {
		return nil, missingField("companionId")
	}
	if req.Date == "" {
		return nil, missingField("date")
	}
	if req.Time == "" {
		return nil, missingField("time")
	}

	baseDate, err := time.ParseInLocation(dateLayout, req.Date, now.Location())
	if err != nil {
		return nil, invalidField("date", "expected YYYY-MM-DD")
	}
	if !IsValidTimeSlot(req.Time) {
		return nil, invalidField("time", "not a bookable time slot")
	}

	var freq Frequency
	if req.IsRecurring {
		parsed, ok := ParseFrequency(req.RecurringFrequency)
		if !ok {
			return nil, invalidField("recurringFrequency", "must be weekly, biweekly or monthly")
		}
		freq = parsed
	}

	if hourlyRate <= 0 {
		hourlyRate = DefaultHourlyRate
	}

	packageName := "Standard Date"
	hours := DefaultBookingHours
	if deal, ok := b.Catalog.Lookup(req.PackageID); ok {
		packageName = deal.Name
		hours = deal.DurationHours
	}

	quote := ComputePrice(b.Catalog, req.PackageID, hourlyRate, hours, req.UseLoyaltyPoints)

	location := req.Location
	if location == "" {
		location = DefaultLocation
	}

	scheduledAt := combineDateAndSlot(baseDate, req.Time)

	primary := models.BookingRecord{
		ID:                 fmt.Sprintf("booking-%d", now.UnixMilli()),
		CompanionID:        req.CompanionID,
		RequesterID:        requesterID,
		ScheduledAt:        scheduledAt,
		Time:               req.Time,
		PackageID:          req.PackageID,
		PackageName:        packageName,
		Location:           location,
		Notes:              req.Notes,
		IsRecurring:        req.IsRecurring,
		RecurringFrequency: string(freq),
		BasePrice:          quote.BasePrice,
		LoyaltyDiscount:    quote.LoyaltyDiscount,
		LoyaltyPointsUsed:  req.LoyaltyPointsUsed,
		TotalPrice:         quote.TotalPrice,
		Status:             models.BookingStatusConfirmed,
		PaymentStatus:      models.PaymentStatusPending,
		CreatedAt:          now,
	}

	set := &models.BookingSet{Primary: primary}

	if req.IsRecurring {
		i := 0
		for next := range Expand(scheduledAt, freq, DefaultRecurrenceCount) {
			i++
			sibling := primary
			sibling.ID = fmt.Sprintf("%s-recurring-%d", primary.ID, i)
			sibling.ScheduledAt = next
			// The loyalty discount applies only to the first occurrence.
			sibling.LoyaltyDiscount = 0
			sibling.LoyaltyPointsUsed = 0
			sibling.TotalPrice = quote.BasePrice
			sibling.Status = models.BookingStatusScheduled
			set.Recurring = append(set.Recurring, sibling)
		}
	}

	return set, nil
}

// combineDateAndSlot resolves the scheduled instant from a calendar date and
// a display time slot.
func combineDateAndSlot(date time.Time, slot string) time.Time {
	t, err := time.Parse(slotLayout, slot)
	if err != nil {
		return date
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location())
}
