package reservation

// PMS reservation states.
const (
	pmsStateConfirmed = "Confirmed"
	pmsStateOptional  = "Optional"
	pmsStateCanceled  = "Canceled"
	pmsStateStarted   = "Started"
	pmsStateProcessed = "Processed"
)

// stateToStatus maps PMS reservation states to API statuses. Unknown states
// default to confirmed.
var stateToStatus = map[string]Status{
	pmsStateConfirmed: StatusConfirmed,
	pmsStateStarted:   StatusConfirmed,
	pmsStateProcessed: StatusConfirmed,
	pmsStateOptional:  StatusPending,
	pmsStateCanceled:  StatusCancelled,
}

// resourceStateToRoomState maps PMS resource states to room states. Unknown
// states default to assigned.
var resourceStateToRoomState = map[string]RoomState{
	"Dirty":        RoomStateUnassigned,
	"Clean":        RoomStateAssigned,
	"Inspected":    RoomStateAssigned,
	"OutOfService": RoomStateUnassigned,
	"OutOfOrder":   RoomStateUnassigned,
}

// activeStates are the PMS states treated as active reservations when no
// status filter (or an unrecognized one) is given.
var activeStates = []string{pmsStateConfirmed, pmsStateStarted, pmsStateProcessed}

// statusForState normalizes a PMS reservation state.
func statusForState(state string) Status {
	if status, ok := stateToStatus[state]; ok {
		return status
	}
	return StatusConfirmed
}

// roomStateForResource normalizes a PMS resource state.
func roomStateForResource(resourceState string) RoomState {
	if state, ok := resourceStateToRoomState[resourceState]; ok {
		return state
	}
	return RoomStateAssigned
}

// StatesForFilter maps an API status filter to the PMS states to query.
func StatesForFilter(status *string) []string {
	if status == nil {
		return activeStates
	}
	switch *status {
	case string(StatusConfirmed):
		return activeStates
	case string(StatusPending):
		return []string{pmsStateOptional}
	case string(StatusCancelled):
		return []string{pmsStateCanceled}
	default:
		return activeStates
	}
}
