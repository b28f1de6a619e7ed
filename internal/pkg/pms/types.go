package pms

// Service is a bookable offering scoped to an enterprise, as returned by
// services/getAll and embedded in the reservations payload.
type Service struct {
	ID           string      `json:"Id"`
	EnterpriseID string      `json:"EnterpriseId"`
	Name         string      `json:"Name"`
	IsActive     bool        `json:"IsActive"`
	Data         ServiceData `json:"Data"`
}

// ServiceData discriminates the service kind; only "Bookable" services with a
// day-based time unit are in scope.
type ServiceData struct {
	Discriminator string           `json:"Discriminator"`
	Value         ServiceDataValue `json:"Value"`
}

type ServiceDataValue struct {
	TimeUnitPeriod string `json:"TimeUnitPeriod"`
}

// ResourceCategory is a room type with a capacity and localized names.
type ResourceCategory struct {
	ID        string            `json:"Id"`
	ServiceID string            `json:"ServiceId"`
	Capacity  int               `json:"Capacity"`
	Name      string            `json:"Name"`
	Names     map[string]string `json:"Names"`
}

// CategoryAvailability carries per-day availability counts and index-aligned
// signed adjustments for one category. Adjustments may be shorter than
// Availabilities; missing entries count as zero.
type CategoryAvailability struct {
	CategoryID     string `json:"CategoryId"`
	Availabilities []int  `json:"Availabilities"`
	Adjustments    []int  `json:"Adjustments"`
}

// CategoryOption is an availability entry that survived filtering, enriched
// with the resolved category name and capacity.
type CategoryOption struct {
	CategoryID     string
	Name           string
	Capacity       int
	Availabilities []int
	Adjustments    []int
}

// Reservation is a raw PMS reservation row.
type Reservation struct {
	ID                  string  `json:"Id"`
	CustomerID          string  `json:"CustomerId"`
	AssignedResourceID  *string `json:"AssignedResourceId"`
	RequestedCategoryID string  `json:"RequestedCategoryId"`
	ServiceID           string  `json:"ServiceId"`
	State               string  `json:"State"`
	Origin              string  `json:"Origin"`
	StartUTC            string  `json:"StartUtc"`
	EndUTC              string  `json:"EndUtc"`
}

// Customer is a guest record referenced by reservations.
type Customer struct {
	ID        string `json:"Id"`
	FirstName string `json:"FirstName"`
	LastName  string `json:"LastName"`
	Email     string `json:"Email"`
	Phone     string `json:"Phone"`
}

// Resource is a physical room referenced by reservations.
type Resource struct {
	ID    string `json:"Id"`
	Name  string `json:"Name"`
	State string `json:"State"`
}

// ReservationsPayload is the raw reservations/getAll response: reservations
// plus the related entities they reference by id.
type ReservationsPayload struct {
	Reservations       []Reservation      `json:"Reservations"`
	Customers          []Customer         `json:"Customers"`
	Resources          []Resource         `json:"Resources"`
	ResourceCategories []ResourceCategory `json:"ResourceCategories"`
	Services           []Service          `json:"Services"`
}
