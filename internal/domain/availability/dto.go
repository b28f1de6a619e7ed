package availability

// Request holds the query parameters of GET /availability.
type Request struct {
	PropertyID string `json:"property_id" validate:"required,uuid"`
	CheckIn    string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Adults     int    `json:"adults" validate:"required,min=1"`
}
