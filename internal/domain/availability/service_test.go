package availability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/roomdesk/roomdesk-api/internal/domain/availability"
	"github.com/roomdesk/roomdesk-api/internal/pkg/pms"
)

type fakeCatalog struct {
	services []pms.Service
	err      error
}

func (f *fakeCatalog) GetBookableServices(ctx context.Context, propertyID string) ([]pms.Service, error) {
	return f.services, f.err
}

type fakeCategories struct {
	categories []pms.ResourceCategory
	gotIDs     []string
}

func (f *fakeCategories) GetForServices(ctx context.Context, serviceIDs []string) ([]pms.ResourceCategory, error) {
	f.gotIDs = serviceIDs
	return f.categories, nil
}

type fakeAvailability struct {
	options    map[string][]pms.CategoryOption
	gotFirst   string
	gotLast    string
	serviceIDs []string
}

func (f *fakeAvailability) GetAvailableCategories(ctx context.Context, serviceID, firstUTC, lastUTC string, categories []pms.ResourceCategory, adults int) ([]pms.CategoryOption, error) {
	f.serviceIDs = append(f.serviceIDs, serviceID)
	f.gotFirst = firstUTC
	f.gotLast = lastUTC
	return f.options[serviceID], nil
}

func validRequest() availability.Request {
	return availability.Request{
		PropertyID: "11111111-1111-1111-1111-111111111111",
		CheckIn:    "2024-06-01",
		CheckOut:   "2024-06-04",
		Adults:     2,
	}
}

func TestGetAvailabilityAggregates(t *testing.T) {
	catalog := &fakeCatalog{services: []pms.Service{{ID: "svc-1"}, {ID: "svc-2"}}}
	categories := &fakeCategories{}
	fetcher := &fakeAvailability{
		options: map[string][]pms.CategoryOption{
			"svc-1": {{CategoryID: "c1", Name: "Double", Capacity: 2, Availabilities: []int{3, 3, 3}}},
			"svc-2": {{CategoryID: "c2", Name: "Suite", Capacity: 4, Availabilities: []int{1, 1, 1}}},
		},
	}

	service := availability.NewService(catalog, categories, fetcher, time.UTC)

	res, err := service.GetAvailability(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if res.Nights != 3 {
		t.Errorf("expected 3 nights, got %d", res.Nights)
	}
	if res.Currency != "EUR" {
		t.Errorf("expected EUR, got %s", res.Currency)
	}
	if len(res.Rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(res.Rooms))
	}
	if res.Rooms[0].RoomDescription != "Double" || res.Rooms[1].RoomDescription != "Suite" {
		t.Errorf("rooms not in service order: %+v", res.Rooms)
	}
	if res.Rooms[0].Price != 0 {
		t.Errorf("expected placeholder price 0, got %v", res.Rooms[0].Price)
	}

	if len(categories.gotIDs) != 2 || categories.gotIDs[0] != "svc-1" {
		t.Errorf("category batch not built from catalog: %v", categories.gotIDs)
	}
	if fetcher.gotFirst != "2024-06-01T00:00:00.000Z" {
		t.Errorf("unexpected first boundary %s", fetcher.gotFirst)
	}
	// Exclusive check-out: last time unit starts 2024-06-03.
	if fetcher.gotLast != "2024-06-03T00:00:00.000Z" {
		t.Errorf("unexpected last boundary %s", fetcher.gotLast)
	}
}

func TestGetAvailabilityDeduplicatesFirstServiceWins(t *testing.T) {
	catalog := &fakeCatalog{services: []pms.Service{{ID: "svc-1"}, {ID: "svc-2"}}}
	fetcher := &fakeAvailability{
		options: map[string][]pms.CategoryOption{
			"svc-1": {{CategoryID: "c1", Name: "From first service", Capacity: 2}},
			"svc-2": {{CategoryID: "c1", Name: "From second service", Capacity: 2}},
		},
	}

	service := availability.NewService(catalog, &fakeCategories{}, fetcher, time.UTC)

	res, err := service.GetAvailability(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(res.Rooms) != 1 {
		t.Fatalf("expected exactly one room for duplicate category, got %d", len(res.Rooms))
	}
	if res.Rooms[0].RoomDescription != "From first service" {
		t.Errorf("expected first service to win, got %q", res.Rooms[0].RoomDescription)
	}
}

func TestGetAvailabilityInvalidRange(t *testing.T) {
	service := availability.NewService(&fakeCatalog{}, &fakeCategories{}, &fakeAvailability{}, time.UTC)

	req := validRequest()
	req.CheckOut = req.CheckIn
	if _, err := service.GetAvailability(context.Background(), req); !errors.Is(err, availability.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange, got %v", err)
	}

	req.CheckOut = "2024-05-30"
	if _, err := service.GetAvailability(context.Background(), req); !errors.Is(err, availability.ErrInvalidDateRange) {
		t.Fatalf("expected ErrInvalidDateRange for reversed range, got %v", err)
	}
}

func TestGetAvailabilityPropagatesNoBookableServices(t *testing.T) {
	catalog := &fakeCatalog{err: pms.ErrNoBookableServices}
	service := availability.NewService(catalog, &fakeCategories{}, &fakeAvailability{}, time.UTC)

	_, err := service.GetAvailability(context.Background(), validRequest())
	if !errors.Is(err, pms.ErrNoBookableServices) {
		t.Fatalf("expected ErrNoBookableServices, got %v", err)
	}
}
