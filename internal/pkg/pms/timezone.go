package pms

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used at the API boundary.
const DateLayout = "2006-01-02"

const (
	// services/getAvailability wants millisecond precision.
	availabilityUTCLayout = "2006-01-02T15:04:05.000Z"
	// reservations/getAll wants whole seconds.
	reservationUTCLayout = "2006-01-02T15:04:05Z"
)

// AvailabilityWindow is the UTC window of a day-based availability query.
type AvailabilityWindow struct {
	FirstTimeUnitStartUTC string
	LastTimeUnitStartUTC  string
}

// ReservationRange is the UTC range of a reservations query.
type ReservationRange struct {
	StartUTC string
	EndUTC   string
}

// Location resolves the property time zone. An empty name falls back to UTC.
func Location(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", name, err)
	}
	return loc, nil
}

// AvailabilityWindowFor converts local calendar dates to the UTC instants of
// the availability endpoint. Day-based time units start at local midnight,
// and the check-out date is exclusive, so the last time unit starts at local
// midnight of the day before check-out.
func AvailabilityWindowFor(checkIn, checkOut string, loc *time.Location) (AvailabilityWindow, error) {
	first, err := localMidnight(checkIn, loc)
	if err != nil {
		return AvailabilityWindow{}, err
	}
	last, err := localMidnight(checkOut, loc)
	if err != nil {
		return AvailabilityWindow{}, err
	}
	last = last.AddDate(0, 0, -1)

	return AvailabilityWindow{
		FirstTimeUnitStartUTC: first.UTC().Format(availabilityUTCLayout),
		LastTimeUnitStartUTC:  last.UTC().Format(availabilityUTCLayout),
	}, nil
}

// ReservationRangeFor converts local calendar dates to the UTC instants of
// the reservations endpoint. A missing check-out defaults to one year after
// check-in.
func ReservationRangeFor(checkIn string, checkOut *string, loc *time.Location) (ReservationRange, error) {
	start, err := localMidnight(checkIn, loc)
	if err != nil {
		return ReservationRange{}, err
	}

	var end time.Time
	if checkOut != nil && *checkOut != "" {
		end, err = localMidnight(*checkOut, loc)
		if err != nil {
			return ReservationRange{}, err
		}
	} else {
		end = start.AddDate(1, 0, 0)
	}

	return ReservationRange{
		StartUTC: start.UTC().Format(reservationUTCLayout),
		EndUTC:   end.UTC().Format(reservationUTCLayout),
	}, nil
}

// localMidnight parses a calendar date as midnight in loc. Going through
// time.Date keeps DST transitions correct: the UTC offset is resolved per
// date, not per range.
func localMidnight(date string, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", date, err)
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, loc), nil
}
