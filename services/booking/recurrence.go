package booking

import (
	"iter"
	"time"
)

// Frequency is how often a recurring booking repeats.
type Frequency string

const (
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
)

// DefaultRecurrenceCount is how many follow-up bookings a recurring request
// generates beyond the primary one.
const DefaultRecurrenceCount = 3

// ParseFrequency validates a client-supplied frequency string.
func ParseFrequency(s string) (Frequency, bool) {
	switch Frequency(s) {
	case FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly:
		return Frequency(s), true
	}
	return "", false
}

// IntervalDays returns the day increment between occurrences. Monthly is a
// flat 30 days rather than true month arithmetic; this mirrors the product's
// scheduling policy and is intentional.
func (f Frequency) IntervalDays() int {
	switch f {
	case FrequencyBiweekly:
		return 14
	case FrequencyMonthly:
		return 30
	default:
		return 7
	}
}

// Expand yields the follow-up dates for a recurring booking: base plus
// interval x i for i = 1..count. The sequence is lazy and restartable; no
// iteration state survives between ranges.
func Expand(base time.Time, freq Frequency, count int) iter.Seq[time.Time] {
	interval := freq.IntervalDays()
	return func(yield func(time.Time) bool) {
		for i := 1; i <= count; i++ {
			if !yield(base.AddDate(0, 0, interval*i)) {
				return
			}
		}
	}
}
