package pms

import (
	"errors"
	"fmt"
)

// ErrNoBookableServices is returned when no active day-based bookable service
// matches the requested property. Terminal for the caller, never retried.
var ErrNoBookableServices = errors.New("no bookable services found")

// RequestError reports a failed PMS connector call.
type RequestError struct {
	Endpoint string
	Status   int
	Err      error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pms request failed: %s: status=%d: %v", e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("pms request failed: %s: status=%d", e.Endpoint, e.Status)
}

func (e *RequestError) Unwrap() error { return e.Err }
