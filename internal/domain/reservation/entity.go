package reservation

// Status is the normalized reservation status exposed by the API.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

// RoomState describes the assignment state of the room of a reservation.
type RoomState string

const (
	RoomStateUnassigned RoomState = "unassigned"
	RoomStateAssigned   RoomState = "assigned"
	RoomStateCheckedIn  RoomState = "checked-in"
)

// Item is one reservation in the API response.
type Item struct {
	ReservationID  string    `json:"reservation_id"`
	Status         Status    `json:"status"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number"`
	BookingChannel string    `json:"booking_channel"`
	RoomState      RoomState `json:"room_state"`
	RoomNumber     *string   `json:"room_number"`
	RoomType       string    `json:"room_type"`
	RoomCategory   string    `json:"room_category"`
	CheckIn        string    `json:"check_in"`
	CheckOut       string    `json:"check_out"`
}

// Response is the reservation listing of a property.
type Response struct {
	PropertyID   string  `json:"property_id"`
	CheckIn      string  `json:"check_in"`
	CheckOut     *string `json:"check_out"`
	Status       *string `json:"status"`
	Reservations []Item  `json:"reservations"`
}
