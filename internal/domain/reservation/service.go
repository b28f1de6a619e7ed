package reservation

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/roomdesk/roomdesk-api/internal/pkg/pms"
)

// Fetcher retrieves raw reservations from the PMS.
type Fetcher interface {
	GetAll(ctx context.Context, enterpriseID string, states []string, startUTC, endUTC string) (*pms.ReservationsPayload, error)
}

// Service maps raw PMS reservations into the domain model.
type Service struct {
	fetcher  Fetcher
	location *time.Location
}

// NewService creates a reservation service. location is the property time
// zone used to anchor day boundaries.
func NewService(fetcher Fetcher, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{fetcher: fetcher, location: location}
}

// GetReservations returns the reservations of a property for the requested
// range and status filter. Malformed reservation rows are skipped, never
// failing the batch.
func (s *Service) GetReservations(ctx context.Context, req Request) (*Response, error) {
	states := StatesForFilter(req.Status)

	rng, err := pms.ReservationRangeFor(req.CheckIn, req.CheckOut, s.location)
	if err != nil {
		return nil, err
	}

	payload, err := s.fetcher.GetAll(ctx, req.PropertyID, states, rng.StartUTC, rng.EndUTC)
	if err != nil {
		return nil, err
	}

	items := MapPayload(payload)

	log.Debug().
		Str("property_id", req.PropertyID).
		Int("raw", len(payload.Reservations)).
		Int("mapped", len(items)).
		Msg("Mapped reservations")

	return &Response{
		PropertyID:   req.PropertyID,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Status:       req.Status,
		Reservations: items,
	}, nil
}

// MapPayload maps every raw reservation in the payload, skipping rows that
// cannot be mapped.
func MapPayload(payload *pms.ReservationsPayload) []Item {
	customers := indexCustomers(payload.Customers)
	resources := indexResources(payload.Resources)
	categories := indexCategories(payload.ResourceCategories)
	services := indexServices(payload.Services)

	items := make([]Item, 0, len(payload.Reservations))
	for _, raw := range payload.Reservations {
		item, ok := mapItem(raw, customers, resources, categories, services)
		if !ok {
			continue
		}
		items = append(items, item)
	}
	return items
}

// mapItem maps one raw reservation. Returns false when the row must be
// skipped, currently only for a missing customer.
func mapItem(
	raw pms.Reservation,
	customers map[string]pms.Customer,
	resources map[string]pms.Resource,
	categories map[string]pms.ResourceCategory,
	services map[string]pms.Service,
) (Item, bool) {
	customer, ok := customers[raw.CustomerID]
	if !ok {
		return Item{}, false
	}

	var resource *pms.Resource
	if raw.AssignedResourceID != nil {
		if found, ok := resources[*raw.AssignedResourceID]; ok {
			resource = &found
		}
	}

	roomState := RoomStateUnassigned
	var roomNumber *string
	if resource != nil {
		roomState = roomStateForResource(resource.State)
		// An in-house reservation wins over the housekeeping state.
		if raw.State == pmsStateStarted {
			roomState = RoomStateCheckedIn
		}
		roomNumber = &resource.Name
	}

	roomType := unknownName
	if service, ok := services[raw.ServiceID]; ok && service.Name != "" {
		roomType = service.Name
	}

	bookingChannel := raw.Origin
	if bookingChannel == "" {
		bookingChannel = "Direct"
	}

	return Item{
		ReservationID:  raw.ID,
		Status:         statusForState(raw.State),
		FirstName:      customer.FirstName,
		LastName:       customer.LastName,
		Email:          customer.Email,
		PhoneNumber:    customer.Phone,
		BookingChannel: bookingChannel,
		RoomState:      roomState,
		RoomNumber:     roomNumber,
		RoomType:       roomType,
		RoomCategory:   categoryName(categories, raw.RequestedCategoryID),
		CheckIn:        formatDate(raw.StartUTC),
		CheckOut:       formatDate(raw.EndUTC),
	}, true
}

const unknownName = "Unknown"

// categoryName resolves the requested category name: en-US localized name,
// then the plain Name field, then "Unknown".
func categoryName(categories map[string]pms.ResourceCategory, categoryID string) string {
	category, ok := categories[categoryID]
	if !ok {
		return unknownName
	}
	if name, ok := category.Names["en-US"]; ok && name != "" {
		return name
	}
	if category.Name != "" {
		return category.Name
	}
	return unknownName
}

// formatDate reduces a UTC timestamp to a calendar date. Empty or unparsable
// input yields an empty string rather than failing the item.
func formatDate(utc string) string {
	if utc == "" {
		return ""
	}
	parsed, err := time.Parse(time.RFC3339, utc)
	if err != nil {
		return ""
	}
	return parsed.Format(pms.DateLayout)
}

func indexCustomers(items []pms.Customer) map[string]pms.Customer {
	indexed := make(map[string]pms.Customer, len(items))
	for _, item := range items {
		if item.ID != "" {
			indexed[item.ID] = item
		}
	}
	return indexed
}

func indexResources(items []pms.Resource) map[string]pms.Resource {
	indexed := make(map[string]pms.Resource, len(items))
	for _, item := range items {
		if item.ID != "" {
			indexed[item.ID] = item
		}
	}
	return indexed
}

func indexCategories(items []pms.ResourceCategory) map[string]pms.ResourceCategory {
	indexed := make(map[string]pms.ResourceCategory, len(items))
	for _, item := range items {
		if item.ID != "" {
			indexed[item.ID] = item
		}
	}
	return indexed
}

func indexServices(items []pms.Service) map[string]pms.Service {
	indexed := make(map[string]pms.Service, len(items))
	for _, item := range items {
		if item.ID != "" {
			indexed[item.ID] = item
		}
	}
	return indexed
}
