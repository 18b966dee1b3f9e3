package booking

import (
	"amora/models"
)

// WizardStep identifies a stage of the booking wizard.
type WizardStep int

const (
	StepPackageSelection WizardStep = iota + 1
	StepScheduling
	StepReview
)

// WizardDetails carries the optional selections gathered on the scheduling
// and review steps.
type WizardDetails struct {
	Location           string `json:"location"`
	Notes              string `json:"notes"`
	IsRecurring        bool   `json:"isRecurring"`
	RecurringFrequency string `json:"recurringFrequency"`
	UseLoyaltyPoints   bool   `json:"useLoyaltyPoints"`
	LoyaltyPointsUsed  int    `json:"loyaltyPointsUsed"`
}

// Wizard is the three-step booking flow for one requester and one companion:
// package selection, scheduling, review. It is owned by a single session and
// is not safe for concurrent mutation. Rejected transitions return a
// *TransitionError and leave the state exactly as it was.
type Wizard struct {
	Step        WizardStep            `json:"step"`
	Submitted   bool                  `json:"submitted"`
	CompanionID string                `json:"companionId"`
	RequesterID string                `json:"requesterId"`
	Selections  models.BookingRequest `json:"selections"`
}

// NewWizard starts a wizard at the package selection step.
func NewWizard(companionID, requesterID string) *Wizard {
	return &Wizard{
		Step:        StepPackageSelection,
		CompanionID: companionID,
		RequesterID: requesterID,
		Selections:  models.BookingRequest{CompanionID: companionID},
	}
}

// SelectPackage records the chosen package deal. Valid only on the package
// selection step; it does not advance the wizard.
func (w *Wizard) SelectPackage(catalog *Catalog, packageID string) error {
	if w.Submitted {
		return rejectTransition(w.Step, "booking already submitted")
	}
	if w.Step != StepPackageSelection {
		return rejectTransition(w.Step, "package can only be chosen on the selection step")
	}
	if _, ok := catalog.Lookup(packageID); !ok {
		return rejectTransition(w.Step, "unknown package deal")
	}
	w.Selections.PackageID = packageID
	return nil
}

// SelectSchedule records the date and time slot. Valid only on the
// scheduling step.
func (w *Wizard) SelectSchedule(date, timeSlot string) error {
	if w.Submitted {
		return rejectTransition(w.Step, "booking already submitted")
	}
	if w.Step != StepScheduling {
		return rejectTransition(w.Step, "schedule can only be chosen on the scheduling step")
	}
	if date == "" || timeSlot == "" {
		return rejectTransition(w.Step, "both date and time are required")
	}
	if !IsValidTimeSlot(timeSlot) {
		return rejectTransition(w.Step, "not a bookable time slot")
	}
	w.Selections.Date = date
	w.Selections.Time = timeSlot
	return nil
}

// SetDetails records the optional selections. Allowed on the scheduling and
// review steps.
func (w *Wizard) SetDetails(d WizardDetails) error {
	if w.Submitted {
		return rejectTransition(w.Step, "booking already submitted")
	}
	if w.Step != StepScheduling && w.Step != StepReview {
		return rejectTransition(w.Step, "details can only be set after a package is chosen")
	}
	w.Selections.Location = d.Location
	w.Selections.Notes = d.Notes
	w.Selections.IsRecurring = d.IsRecurring
	w.Selections.RecurringFrequency = d.RecurringFrequency
	w.Selections.UseLoyaltyPoints = d.UseLoyaltyPoints
	w.Selections.LoyaltyPointsUsed = d.LoyaltyPointsUsed
	return nil
}

// Advance moves the wizard one step forward, enforcing the gate for the step
// being left.
func (w *Wizard) Advance() error {
	if w.Submitted {
		return rejectTransition(w.Step, "booking already submitted")
	}
	switch w.Step {
	case StepPackageSelection:
		if w.Selections.PackageID == "" {
			return rejectTransition(w.Step, "select a package before continuing")
		}
		w.Step = StepScheduling
	case StepScheduling:
		if w.Selections.Date == "" || w.Selections.Time == "" {
			return rejectTransition(w.Step, "select a date and time before continuing")
		}
		w.Step = StepReview
	default:
		return rejectTransition(w.Step, "already at review; submit instead")
	}
	return nil
}

// Retreat moves the wizard one step back. Always allowed from scheduling and
// review.
func (w *Wizard) Retreat() error {
	if w.Submitted {
		return rejectTransition(w.Step, "booking already submitted")
	}
	if w.Step == StepPackageSelection {
		return rejectTransition(w.Step, "already at the first step")
	}
	w.Step--
	return nil
}

// Submit finalizes the wizard by invoking build with the accumulated
// selections. Valid only on the review step with date and time present.
// On success the wizard becomes terminal; on failure the state is preserved
// so the requester can correct and retry.
func (w *Wizard) Submit(build func(models.BookingRequest) (*models.BookingSet, error)) (*models.BookingSet, error) {
	if w.Submitted {
		return nil, rejectTransition(w.Step, "booking already submitted")
	}
	if w.Step != StepReview {
		return nil, rejectTransition(w.Step, "submission is only allowed from review")
	}
	if w.Selections.Date == "" || w.Selections.Time == "" {
		return nil, rejectTransition(w.Step, "date and time must be selected before submitting")
	}

	set, err := build(w.Selections)
	if err != nil {
		return nil, err
	}
	w.Submitted = true
	return set, nil
}
