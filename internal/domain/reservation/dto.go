package reservation

// Request holds the query parameters of GET /reservations. CheckOut and
// Status are optional.
type Request struct {
	PropertyID string  `json:"property_id" validate:"required,uuid"`
	CheckIn    string  `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   *string `json:"check_out" validate:"omitempty,datetime=2006-01-02"`
	Status     *string `json:"status" validate:"omitempty,reservation_status"`
}
