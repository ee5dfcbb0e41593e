package report

import (
	"testing"
	"time"
)

func TestParseActivityDate_DayFirst(t *testing.T) {
	t.Parallel()

	parsed, err := parseActivityDate("15/03/2024", DayFirst)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	want := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)
	if !parsed.Equal(want) {
		t.Fatalf("unexpected date: want %s, got %s", want, parsed)
	}
}

func TestParseActivityDate_MonthFirst(t *testing.T) {
	t.Parallel()

	parsed, err := parseActivityDate("03/15/2024", MonthFirst)
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if parsed.Month() != time.March || parsed.Day() != 15 {
		t.Fatalf("unexpected date: got %s", parsed)
	}
}

func TestParseActivityDate_ISOAcceptedForBothOrders(t *testing.T) {
	t.Parallel()

	for _, order := range []DateOrder{DayFirst, MonthFirst} {
		parsed, err := parseActivityDate("2024-03-15", order)
		if err != nil {
			t.Fatalf("parse ISO date with order %d: %v", order, err)
		}
		if parsed.Day() != 15 || parsed.Month() != time.March {
			t.Fatalf("unexpected ISO date: got %s", parsed)
		}
	}
}

func TestParseActivityDate_RejectsInvalidCalendarDay(t *testing.T) {
	t.Parallel()

	if _, err := parseActivityDate("31/02/2024", DayFirst); err == nil {
		t.Fatalf("expected error for 31/02/2024")
	}
}

func TestParseActivityDate_RejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "not a date", "2024", "15/13/2024"} {
		if _, err := parseActivityDate(raw, DayFirst); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestNormalizeClock_AcceptedFormats(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"14:00":    "14:00",
		"14:00:30": "14:00",
		"2:30 PM":  "14:30",
		"2:30PM":   "14:30",
		"14h30":    "14:30",
		"14h":      "14:00",
		"14.30":    "14:30",
		" 09:05 ":  "09:05",
	}
	for raw, want := range cases {
		if got := NormalizeClock(raw); got != want {
			t.Fatalf("NormalizeClock(%q): want %q, got %q", raw, want, got)
		}
	}
}

func TestNormalizeClock_UnparseableBecomesEmpty(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "soon", "25:99", "1430h30"} {
		if got := NormalizeClock(raw); got != "" {
			t.Fatalf("NormalizeClock(%q): want empty, got %q", raw, got)
		}
	}
}

func TestEndTime_AddsFourHours(t *testing.T) {
	t.Parallel()

	if got := EndTime("14:00"); got != "18:00" {
		t.Fatalf("unexpected end time: want 18:00, got %q", got)
	}
}

func TestEndTime_WrapsPastMidnight(t *testing.T) {
	t.Parallel()

	if got := EndTime("22:30"); got != "02:30" {
		t.Fatalf("unexpected wrapped end time: want 02:30, got %q", got)
	}
}

func TestEndTime_EmptyOrBadStartYieldsEmpty(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "whenever"} {
		if got := EndTime(raw); got != "" {
			t.Fatalf("EndTime(%q): want empty, got %q", raw, got)
		}
	}
}
