package booking

import (
	"testing"
	"time"
)

func collectDates(base time.Time, freq Frequency, count int) []time.Time {
	var out []time.Time
	for d := range Expand(base, freq, count) {
		out = append(out, d)
	}
	return out
}

func TestExpandWeekly(t *testing.T) {
	base := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)

	dates := collectDates(base, FrequencyWeekly, 3)
	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(dates))
	}

	expected := []time.Time{
		time.Date(2024, 6, 8, 18, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 22, 18, 0, 0, 0, time.UTC),
	}
	for i, want := range expected {
		if !dates[i].Equal(want) {
			t.Errorf("date %d: expected %v, got %v", i, want, dates[i])
		}
	}
}

func TestExpandMonthlyIsThirtyDays(t *testing.T) {
	base := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)

	// Monthly means a flat 30-day increment, not month-end arithmetic.
	dates := collectDates(base, FrequencyMonthly, 3)
	expected := []time.Time{
		base.AddDate(0, 0, 30),
		base.AddDate(0, 0, 60),
		base.AddDate(0, 0, 90),
	}
	for i, want := range expected {
		if !dates[i].Equal(want) {
			t.Errorf("date %d: expected %v, got %v", i, want, dates[i])
		}
	}
}

func TestExpandBiweekly(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	dates := collectDates(base, FrequencyBiweekly, 2)
	if len(dates) != 2 {
		t.Fatalf("expected 2 dates, got %d", len(dates))
	}
	if !dates[0].Equal(base.AddDate(0, 0, 14)) || !dates[1].Equal(base.AddDate(0, 0, 28)) {
		t.Errorf("unexpected biweekly dates: %v", dates)
	}
}

func TestExpandIsRestartable(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	seq := Expand(base, FrequencyWeekly, 3)

	first := make([]time.Time, 0, 3)
	for d := range seq {
		first = append(first, d)
	}
	second := make([]time.Time, 0, 3)
	for d := range seq {
		second = append(second, d)
	}

	if len(first) != len(second) {
		t.Fatalf("restarted sequence yielded %d dates, expected %d", len(second), len(first))
	}
	for i := range first {
		if !first[i].Equal(second[i]) {
			t.Errorf("restarted sequence diverged at %d: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestExpandEarlyBreak(t *testing.T) {
	base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	var got []time.Time
	for d := range Expand(base, FrequencyWeekly, 3) {
		got = append(got, d)
		if len(got) == 1 {
			break
		}
	}
	if len(got) != 1 {
		t.Fatalf("expected early break after 1 date, got %d", len(got))
	}
}

func TestParseFrequency(t *testing.T) {
	for _, valid := range []string{"weekly", "biweekly", "monthly"} {
		if _, ok := ParseFrequency(valid); !ok {
			t.Errorf("expected %q to parse", valid)
		}
	}
	for _, invalid := range []string{"", "daily", "yearly", "Weekly"} {
		if _, ok := ParseFrequency(invalid); ok {
			t.Errorf("expected %q to be rejected", invalid)
		}
	}
}
