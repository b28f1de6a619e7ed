package availability

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/roomdesk/roomdesk-api/internal/pkg/pms"
)

// placeholderCurrency is fixed: the connector endpoints in scope expose no
// per-category nightly rates, so price stays 0 and currency EUR.
const placeholderCurrency = "EUR"

// ServiceCatalog lists the bookable services of a property.
type ServiceCatalog interface {
	GetBookableServices(ctx context.Context, propertyID string) ([]pms.Service, error)
}

// CategoryFetcher resolves resource categories for a batch of services.
type CategoryFetcher interface {
	GetForServices(ctx context.Context, serviceIDs []string) ([]pms.ResourceCategory, error)
}

// AvailabilityFetcher returns the available categories of one service.
type AvailabilityFetcher interface {
	GetAvailableCategories(ctx context.Context, serviceID, firstTimeUnitStartUTC, lastTimeUnitStartUTC string, categories []pms.ResourceCategory, adults int) ([]pms.CategoryOption, error)
}

// Service aggregates per-service PMS availability into one response.
type Service struct {
	catalog      ServiceCatalog
	categories   CategoryFetcher
	availability AvailabilityFetcher
	location     *time.Location
}

// NewService creates an availability service. location is the property time
// zone used to anchor day boundaries.
func NewService(catalog ServiceCatalog, categories CategoryFetcher, availability AvailabilityFetcher, location *time.Location) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		catalog:      catalog,
		categories:   categories,
		availability: availability,
		location:     location,
	}
}

// GetAvailability returns the available room categories of a property for the
// requested stay, deduplicated across services (first service wins).
func (s *Service) GetAvailability(ctx context.Context, req Request) (*Response, error) {
	nights, err := nightsBetween(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	services, err := s.catalog.GetBookableServices(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}

	serviceIDs := make([]string, 0, len(services))
	for _, svc := range services {
		serviceIDs = append(serviceIDs, svc.ID)
	}

	categories, err := s.categories.GetForServices(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	window, err := pms.AvailabilityWindowFor(req.CheckIn, req.CheckOut, s.location)
	if err != nil {
		return nil, err
	}

	rooms, err := s.collectRooms(ctx, services, categories, window, req.Adults)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("property_id", req.PropertyID).
		Int("services", len(services)).
		Int("rooms", len(rooms)).
		Msg("Aggregated availability")

	return &Response{
		PropertyID: req.PropertyID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Nights:     nights,
		Adults:     req.Adults,
		Currency:   placeholderCurrency,
		Rooms:      rooms,
	}, nil
}

// collectRooms queries each service in catalog order and merges the results.
// A category seen for an earlier service is never overwritten by a later one.
func (s *Service) collectRooms(ctx context.Context, services []pms.Service, categories []pms.ResourceCategory, window pms.AvailabilityWindow, adults int) ([]Room, error) {
	seen := make(map[string]struct{})
	var rooms []Room

	for _, svc := range services {
		options, err := s.availability.GetAvailableCategories(
			ctx,
			svc.ID,
			window.FirstTimeUnitStartUTC,
			window.LastTimeUnitStartUTC,
			categories,
			adults,
		)
		if err != nil {
			return nil, err
		}

		for _, option := range options {
			if _, ok := seen[option.CategoryID]; ok {
				continue
			}
			seen[option.CategoryID] = struct{}{}

			rooms = append(rooms, Room{
				CategoryID:      option.CategoryID,
				RoomDescription: option.Name,
				Capacity:        option.Capacity,
				Availability:    option.Availabilities,
				Adjustment:      option.Adjustments,
				Price:           0,
				Currency:        placeholderCurrency,
			})
		}
	}

	return rooms, nil
}

func nightsBetween(checkIn, checkOut string) (int, error) {
	start, err := time.Parse(pms.DateLayout, checkIn)
	if err != nil {
		return 0, ErrInvalidDateRange
	}
	end, err := time.Parse(pms.DateLayout, checkOut)
	if err != nil {
		return 0, ErrInvalidDateRange
	}

	nights := int(end.Sub(start).Hours() / 24)
	if nights <= 0 {
		return 0, ErrInvalidDateRange
	}
	return nights, nil
}
