package pms

import (
	"testing"
	"time"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Fatalf("load location %s: %v", name, err)
	}
	return loc
}

func TestAvailabilityWindowUTC(t *testing.T) {
	window, err := AvailabilityWindowFor("2024-06-01", "2024-06-03", time.UTC)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if window.FirstTimeUnitStartUTC != "2024-06-01T00:00:00.000Z" {
		t.Errorf("unexpected first %s", window.FirstTimeUnitStartUTC)
	}
	// Check-out is exclusive: the last time unit starts the day before.
	if window.LastTimeUnitStartUTC != "2024-06-02T00:00:00.000Z" {
		t.Errorf("unexpected last %s", window.LastTimeUnitStartUTC)
	}
}

func TestAvailabilityWindowDSTSpringForward(t *testing.T) {
	budapest := mustLocation(t, "Europe/Budapest")

	// Before the transition local midnight is UTC+1.
	window, err := AvailabilityWindowFor("2024-03-30", "2024-04-01", budapest)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if window.FirstTimeUnitStartUTC != "2024-03-29T23:00:00.000Z" {
		t.Errorf("unexpected first %s", window.FirstTimeUnitStartUTC)
	}
	if window.LastTimeUnitStartUTC != "2024-03-30T23:00:00.000Z" {
		t.Errorf("unexpected last %s", window.LastTimeUnitStartUTC)
	}

	// With a later check-out the last boundary falls after the 2024-03-31
	// transition and must be UTC+2.
	window, err = AvailabilityWindowFor("2024-03-30", "2024-04-02", budapest)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if window.LastTimeUnitStartUTC != "2024-03-31T22:00:00.000Z" {
		t.Errorf("unexpected last across DST %s", window.LastTimeUnitStartUTC)
	}
}

func TestReservationRangeStraddlesDST(t *testing.T) {
	budapest := mustLocation(t, "Europe/Budapest")
	checkOut := "2024-04-01"

	rng, err := ReservationRangeFor("2024-03-30", &checkOut, budapest)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rng.StartUTC != "2024-03-29T23:00:00Z" {
		t.Errorf("unexpected start %s", rng.StartUTC)
	}
	if rng.EndUTC != "2024-03-31T22:00:00Z" {
		t.Errorf("unexpected end %s", rng.EndUTC)
	}
}

func TestReservationRangeDefaultsToOneYear(t *testing.T) {
	budapest := mustLocation(t, "Europe/Budapest")

	rng, err := ReservationRangeFor("2024-03-30", nil, budapest)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rng.StartUTC != "2024-03-29T23:00:00Z" {
		t.Errorf("unexpected start %s", rng.StartUTC)
	}
	// 2025-03-30 local midnight precedes that year's spring-forward switch.
	if rng.EndUTC != "2025-03-29T23:00:00Z" {
		t.Errorf("unexpected end %s", rng.EndUTC)
	}
}

func TestReservationRangeEmptyCheckOutPointer(t *testing.T) {
	empty := ""
	rng, err := ReservationRangeFor("2024-06-01", &empty, time.UTC)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if rng.EndUTC != "2025-06-01T00:00:00Z" {
		t.Errorf("unexpected end %s", rng.EndUTC)
	}
}

func TestLocationFallsBackToUTC(t *testing.T) {
	loc, err := Location("")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if loc != time.UTC {
		t.Errorf("expected UTC, got %v", loc)
	}

	if _, err := Location("Not/AZone"); err == nil {
		t.Error("expected error for unknown zone")
	}
}

func TestAvailabilityWindowRejectsBadDates(t *testing.T) {
	if _, err := AvailabilityWindowFor("01-06-2024", "2024-06-03", time.UTC); err == nil {
		t.Error("expected error for malformed check-in")
	}
	if _, err := ReservationRangeFor("2024-13-40", nil, time.UTC); err == nil {
		t.Error("expected error for malformed date")
	}
}
