package availability

// Room is one available room category. CategoryID is kept for deduplication
// across services and not serialized.
type Room struct {
	CategoryID      string  `json:"-"`
	RoomDescription string  `json:"room_description"`
	Capacity        int     `json:"capacity"`
	Availability    []int   `json:"availability"`
	Adjustment      []int   `json:"adjustment"`
	Price           float64 `json:"price"`
	Currency        string  `json:"currency"`
}

// Response is the aggregated availability of a property for a stay.
type Response struct {
	PropertyID string `json:"property_id"`
	CheckIn    string `json:"check_in"`
	CheckOut   string `json:"check_out"`
	Nights     int    `json:"nights"`
	Adults     int    `json:"adults"`
	Currency   string `json:"currency"`
	Rooms      []Room `json:"rooms"`
}
