package task

import (
	"errors"
	"testing"
	"time"
)

func TestValidateTitle(t *testing.T) {
	got, err := ValidateTitle("  Buy milk \t")
	if err != nil || got != "Buy milk" {
		t.Fatalf("got %q, %v", got, err)
	}

	if _, err := ValidateTitle(" \n "); !errors.Is(err, ErrTitleEmpty) {
		t.Fatalf("err=%v", err)
	}
}

func TestParseDueDate(t *testing.T) {
	cases := map[string]time.Time{
		"2026-05-01T10:00:00Z":             time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
		"2026-05-01T12:00:00+02:00":        time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
		"2026-05-01T10:00:00.123456789Z":   time.Date(2026, 5, 1, 10, 0, 0, 123456000, time.UTC),
		"2026-05-01T10:00":                 time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
		"2026-05-01T10:00Z":                time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
		"2026-05-01 10:00:30":              time.Date(2026, 5, 1, 10, 0, 30, 0, time.UTC),
		"2026-05-01T10:00:30.5":            time.Date(2026, 5, 1, 10, 0, 30, 500000000, time.UTC),
		"2026-05-01":                       time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		" 2026-05-01 ":                     time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		"2026-05-01 10:00:00.000001-01:00": time.Date(2026, 5, 1, 11, 0, 0, 1000, time.UTC),
	}
	for in, want := range cases {
		got, err := ParseDueDate(in)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if !got.Equal(want) || got.Location() != time.UTC {
			t.Fatalf("%q: got %s want %s", in, got, want)
		}
	}
}

func TestParseDueDate_Rejects(t *testing.T) {
	for _, in := range []string{"not-a-date", "31/12/2026", "2026-13-01", "2026-02-30", "tomorrow"} {
		if _, err := ParseDueDate(in); !errors.Is(err, ErrInvalidDueDate) {
			t.Fatalf("%q: err=%v", in, err)
		}
	}
}
