package booking

import (
	"slices"

	"amora/models"
)

// TimeSlots is the fixed set of start times a date can be booked at.
var TimeSlots = []string{"10:00 AM", "12:00 PM", "2:00 PM", "4:00 PM", "6:00 PM", "8:00 PM"}

// IsValidTimeSlot reports whether slot is one of the bookable start times.
func IsValidTimeSlot(slot string) bool {
	return slices.Contains(TimeSlots, slot)
}

// Catalog is the read-only table of package deals, built once at process
// start. Unknown IDs are a normal miss, not an error; callers fall back to
// hourly pricing.
type Catalog struct {
	deals []models.PackageDeal
	byID  map[string]models.PackageDeal
}

// NewCatalog returns the catalog of bookable package deals.
func NewCatalog() *Catalog {
	deals := []models.PackageDeal{
		{
			ID:            "first-date",
			Name:          "First Date Package",
			Description:   "Perfect for getting to know each other",
			DurationHours: 2,
			BasePrice:     120,
			Savings:       20,
			Features:      []string{"2-hour date", "Coffee/dinner included", "Photo session", "Follow-up chat"},
		},
		{
			ID:            "weekend-getaway",
			Name:          "Weekend Getaway",
			Description:   "Extended time together for deeper connection",
			DurationHours: 6,
			BasePrice:     300,
			Savings:       60,
			Features:      []string{"6-hour date", "Activity planning", "Transportation", "Memory book"},
		},
		{
			ID:            "monthly-package",
			Name:          "Monthly Package",
			Description:   "Regular dates for ongoing relationship",
			DurationHours: 12,
			BasePrice:     500,
			Savings:       150,
			Features:      []string{"4 dates (3 hours each)", "Priority booking", "Personal concierge", "Exclusive events"},
		},
	}

	byID := make(map[string]models.PackageDeal, len(deals))
	for _, d := range deals {
		byID[d.ID] = d
	}
	return &Catalog{deals: deals, byID: byID}
}

// Lookup returns the package deal for the given ID.
func (c *Catalog) Lookup(id string) (models.PackageDeal, bool) {
	deal, ok := c.byID[id]
	return deal, ok
}

// Deals returns all package deals in display order.
func (c *Catalog) Deals() []models.PackageDeal {
	out := make([]models.PackageDeal, len(c.deals))
	copy(out, c.deals)
	return out
}
