package booking

import "testing"

func TestCatalogLookup(t *testing.T) {
	catalog := NewCatalog()

	tests := []struct {
		id    string
		name  string
		price float64
		hours int
	}{
		{"first-date", "First Date Package", 120, 2},
		{"weekend-getaway", "Weekend Getaway", 300, 6},
		{"monthly-package", "Monthly Package", 500, 12},
	}
	for _, tc := range tests {
		deal, ok := catalog.Lookup(tc.id)
		if !ok {
			t.Errorf("Lookup(%q): not found", tc.id)
			continue
		}
		if deal.Name != tc.name || deal.BasePrice != tc.price || deal.DurationHours != tc.hours {
			t.Errorf("Lookup(%q) = %+v, want name=%q price=%v hours=%d",
				tc.id, deal, tc.name, tc.price, tc.hours)
		}
	}

	if _, ok := catalog.Lookup("no-such-deal"); ok {
		t.Error("Lookup of an unknown ID must report not found")
	}
	if _, ok := catalog.Lookup(""); ok {
		t.Error("Lookup of an empty ID must report not found")
	}
}

func TestCatalogDealsIsACopy(t *testing.T) {
	catalog := NewCatalog()

	deals := catalog.Deals()
	if len(deals) != 3 {
		t.Fatalf("expected 3 deals, got %d", len(deals))
	}
	deals[0].BasePrice = 1

	fresh, _ := catalog.Lookup(deals[0].ID)
	if fresh.BasePrice == 1 {
		t.Error("mutating the returned slice must not affect the catalog")
	}
}

func TestIsValidTimeSlot(t *testing.T) {
	for _, slot := range TimeSlots {
		if !IsValidTimeSlot(slot) {
			t.Errorf("IsValidTimeSlot(%q) = false, want true", slot)
		}
	}
	for _, slot := range []string{"", "10:00", "10:00 am", "9:00 PM", "10:00AM"} {
		if IsValidTimeSlot(slot) {
			t.Errorf("IsValidTimeSlot(%q) = true, want false", slot)
		}
	}
}
