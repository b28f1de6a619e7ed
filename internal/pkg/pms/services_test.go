package pms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

const propertyID = "11111111-1111-1111-1111-111111111111"

func newCatalogServer(t *testing.T, body string) *ServiceCatalog {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != endpointServicesGetAll {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return NewServiceCatalog(NewGateway(Config{BaseURL: server.URL}))
}

func TestGetBookableServicesFilters(t *testing.T) {
	catalog := newCatalogServer(t, `{
		"Services": [
			{"Id": "keep-1", "EnterpriseId": "`+propertyID+`", "IsActive": true,
			 "Data": {"Discriminator": "Bookable", "Value": {"TimeUnitPeriod": "Day"}}},
			{"Id": "drop-not-bookable", "EnterpriseId": "`+propertyID+`", "IsActive": true,
			 "Data": {"Discriminator": "Additional", "Value": {"TimeUnitPeriod": "Day"}}},
			{"Id": "drop-other-property", "EnterpriseId": "other", "IsActive": true,
			 "Data": {"Discriminator": "Bookable", "Value": {"TimeUnitPeriod": "Day"}}},
			{"Id": "drop-inactive", "EnterpriseId": "`+propertyID+`", "IsActive": false,
			 "Data": {"Discriminator": "Bookable", "Value": {"TimeUnitPeriod": "Day"}}},
			{"Id": "drop-hourly", "EnterpriseId": "`+propertyID+`", "IsActive": true,
			 "Data": {"Discriminator": "Bookable", "Value": {"TimeUnitPeriod": "Hour"}}},
			{"Id": "`+propertyID+`", "EnterpriseId": "enterprise-2", "IsActive": true,
			 "Data": {"Discriminator": "Bookable", "Value": {"TimeUnitPeriod": "Day"}}}
		]
	}`)

	services, err := catalog.GetBookableServices(context.Background(), propertyID)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(services) != 2 {
		t.Fatalf("expected 2 services, got %d", len(services))
	}
	if services[0].ID != "keep-1" {
		t.Errorf("expected keep-1 first, got %s", services[0].ID)
	}
	// Matching by service id counts too, not only by enterprise id.
	if services[1].ID != propertyID {
		t.Errorf("expected service matched by own id, got %s", services[1].ID)
	}
}

func TestGetBookableServicesEmpty(t *testing.T) {
	catalog := newCatalogServer(t, `{"Services": [
		{"Id": "other", "EnterpriseId": "other", "IsActive": true,
		 "Data": {"Discriminator": "Bookable", "Value": {"TimeUnitPeriod": "Day"}}}
	]}`)

	_, err := catalog.GetBookableServices(context.Background(), propertyID)
	if !errors.Is(err, ErrNoBookableServices) {
		t.Fatalf("expected ErrNoBookableServices, got %v", err)
	}
}

func TestGetBookableServicesUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	catalog := NewServiceCatalog(NewGateway(Config{BaseURL: server.URL}))

	_, err := catalog.GetBookableServices(context.Background(), propertyID)
	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected *RequestError, got %v", err)
	}
}
