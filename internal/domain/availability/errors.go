package availability

import "errors"

// ErrInvalidDateRange is returned when check-out is not strictly after
// check-in. The handler validates the range up front; the service re-checks
// so a bad range can never produce a zero- or negative-night response.
var ErrInvalidDateRange = errors.New("check_out must be after check_in")
