package booking

import (
	"errors"
	"fmt"
	"testing"

	"amora/models"
)

func advanceToReview(t *testing.T, w *Wizard, catalog *Catalog) {
	t.Helper()
	if err := w.SelectPackage(catalog, "first-date"); err != nil {
		t.Fatalf("SelectPackage: %v", err)
	}
	if err := w.Advance(); err != nil {
		t.Fatalf("Advance to scheduling: %v", err)
	}
	if err := w.SelectSchedule("2024-06-01", "6:00 PM"); err != nil {
		t.Fatalf("SelectSchedule: %v", err)
	}
	if err := w.Advance(); err != nil {
		t.Fatalf("Advance to review: %v", err)
	}
}

func TestAdvanceRequiresPackage(t *testing.T) {
	catalog := NewCatalog()
	w := NewWizard("c1", "user-1")

	err := w.Advance()
	var tErr *TransitionError
	if !errors.As(err, &tErr) {
		t.Fatalf("expected TransitionError, got %v", err)
	}
	if w.Step != StepPackageSelection {
		t.Errorf("rejected advance must not move the wizard, step=%d", w.Step)
	}

	if err := w.SelectPackage(catalog, "first-date"); err != nil {
		t.Fatalf("SelectPackage: %v", err)
	}
	if err := w.Advance(); err != nil {
		t.Fatalf("Advance after selection: %v", err)
	}
	if w.Step != StepScheduling {
		t.Errorf("expected step 2, got %d", w.Step)
	}
}

func TestAdvanceRequiresSchedule(t *testing.T) {
	catalog := NewCatalog()
	w := NewWizard("c1", "user-1")

	if err := w.SelectPackage(catalog, "weekend-getaway"); err != nil {
		t.Fatalf("SelectPackage: %v", err)
	}
	if err := w.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if err := w.Advance(); err == nil {
		t.Fatal("expected rejection without date and time")
	}
	if w.Step != StepScheduling {
		t.Errorf("rejected advance must not move the wizard, step=%d", w.Step)
	}

	if err := w.SelectSchedule("2024-06-01", "2:00 PM"); err != nil {
		t.Fatalf("SelectSchedule: %v", err)
	}
	if err := w.Advance(); err != nil {
		t.Fatalf("Advance to review: %v", err)
	}
	if w.Step != StepReview {
		t.Errorf("expected step 3, got %d", w.Step)
	}
}

func TestSelectPackageUnknownDeal(t *testing.T) {
	catalog := NewCatalog()
	w := NewWizard("c1", "user-1")

	if err := w.SelectPackage(catalog, "no-such-deal"); err == nil {
		t.Fatal("expected rejection for unknown package")
	}
	if w.Selections.PackageID != "" {
		t.Error("rejected selection must not be recorded")
	}
}

func TestSelectScheduleRejectsBadSlot(t *testing.T) {
	catalog := NewCatalog()
	w := NewWizard("c1", "user-1")
	if err := w.SelectPackage(catalog, "first-date"); err != nil {
		t.Fatalf("SelectPackage: %v", err)
	}
	if err := w.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	if err := w.SelectSchedule("2024-06-01", "11:11 PM"); err == nil {
		t.Fatal("expected rejection for slot outside the bookable set")
	}
	if w.Selections.Time != "" {
		t.Error("rejected schedule must not be recorded")
	}
}

func TestRetreat(t *testing.T) {
	catalog := NewCatalog()
	w := NewWizard("c1", "user-1")

	if err := w.Retreat(); err == nil {
		t.Error("expected rejection retreating from the first step")
	}

	advanceToReview(t, w, catalog)
	if err := w.Retreat(); err != nil {
		t.Fatalf("Retreat: %v", err)
	}
	if w.Step != StepScheduling {
		t.Errorf("expected step 2 after retreat, got %d", w.Step)
	}
	if err := w.Retreat(); err != nil {
		t.Fatalf("Retreat: %v", err)
	}
	if w.Step != StepPackageSelection {
		t.Errorf("expected step 1 after retreat, got %d", w.Step)
	}
}

func TestSubmitOnlyFromReview(t *testing.T) {
	catalog := NewCatalog()
	w := NewWizard("c1", "user-1")

	build := func(models.BookingRequest) (*models.BookingSet, error) {
		t.Fatal("build must not be invoked before review")
		return nil, nil
	}
	if _, err := w.Submit(build); err == nil {
		t.Fatal("expected rejection submitting from step 1")
	}

	advanceToReview(t, w, catalog)

	called := false
	set, err := w.Submit(func(req models.BookingRequest) (*models.BookingSet, error) {
		called = true
		if req.CompanionID != "c1" || req.PackageID != "first-date" {
			t.Errorf("submit passed wrong selections: %+v", req)
		}
		return &models.BookingSet{Primary: models.BookingRecord{ID: "booking-1"}}, nil
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !called {
		t.Fatal("build closure was not invoked")
	}
	if set.Primary.ID != "booking-1" {
		t.Errorf("unexpected booking set: %+v", set)
	}
	if !w.Submitted {
		t.Error("wizard must be terminal after successful submission")
	}

	// Terminal: every further transition is rejected.
	if err := w.Advance(); err == nil {
		t.Error("expected rejection advancing after submission")
	}
	if err := w.Retreat(); err == nil {
		t.Error("expected rejection retreating after submission")
	}
	if _, err := w.Submit(build); err == nil {
		t.Error("expected rejection resubmitting")
	}
}

func TestSubmitFailurePreservesState(t *testing.T) {
	catalog := NewCatalog()
	w := NewWizard("c1", "user-1")
	advanceToReview(t, w, catalog)

	_, err := w.Submit(func(models.BookingRequest) (*models.BookingSet, error) {
		return nil, fmt.Errorf("persistence unavailable")
	})
	if err == nil {
		t.Fatal("expected build error to surface")
	}
	if w.Submitted {
		t.Error("failed submission must not mark the wizard terminal")
	}
	if w.Step != StepReview {
		t.Errorf("failed submission must stay on review, step=%d", w.Step)
	}
}
