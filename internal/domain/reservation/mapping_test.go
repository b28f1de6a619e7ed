package reservation

import (
	"reflect"
	"testing"
)

func TestStatesForFilter(t *testing.T) {
	confirmed := "confirmed"
	pending := "pending"
	cancelled := "cancelled"
	unknown := "archived"

	active := []string{"Confirmed", "Started", "Processed"}

	tests := []struct {
		name   string
		status *string
		want   []string
	}{
		{"no filter", nil, active},
		{"confirmed", &confirmed, active},
		{"pending", &pending, []string{"Optional"}},
		{"cancelled", &cancelled, []string{"Canceled"}},
		{"unrecognized defaults to active", &unknown, active},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatesForFilter(tt.status); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStatusForState(t *testing.T) {
	tests := []struct {
		state string
		want  Status
	}{
		{"Confirmed", StatusConfirmed},
		{"Started", StatusConfirmed},
		{"Processed", StatusConfirmed},
		{"Optional", StatusPending},
		{"Canceled", StatusCancelled},
		{"SomethingNew", StatusConfirmed},
	}

	for _, tt := range tests {
		if got := statusForState(tt.state); got != tt.want {
			t.Errorf("state %s: expected %s, got %s", tt.state, tt.want, got)
		}
	}
}

func TestRoomStateForResource(t *testing.T) {
	tests := []struct {
		state string
		want  RoomState
	}{
		{"Dirty", RoomStateUnassigned},
		{"Clean", RoomStateAssigned},
		{"Inspected", RoomStateAssigned},
		{"OutOfService", RoomStateUnassigned},
		{"OutOfOrder", RoomStateUnassigned},
		{"SomethingNew", RoomStateAssigned},
	}

	for _, tt := range tests {
		if got := roomStateForResource(tt.state); got != tt.want {
			t.Errorf("state %s: expected %s, got %s", tt.state, tt.want, got)
		}
	}
}
