package pms

import "context"

const endpointServicesGetAll = "/api/connector/v1/services/getAll"

// ServiceCatalog fetches and filters the bookable services of a property.
type ServiceCatalog struct {
	gw *Gateway
}

// NewServiceCatalog creates a service catalog fetcher.
func NewServiceCatalog(gw *Gateway) *ServiceCatalog {
	return &ServiceCatalog{gw: gw}
}

type servicesResponse struct {
	Services []Service `json:"Services"`
}

// GetBookableServices returns the active, day-based bookable services that
// belong to the given property. Returns ErrNoBookableServices when the
// filtered set is empty.
func (c *ServiceCatalog) GetBookableServices(ctx context.Context, propertyID string) ([]Service, error) {
	var resp servicesResponse
	if err := c.gw.Post(ctx, endpointServicesGetAll, nil, &resp); err != nil {
		return nil, err
	}

	var bookable []Service
	for _, svc := range resp.Services {
		if svc.Data.Discriminator != "Bookable" {
			continue
		}
		if svc.ID != propertyID && svc.EnterpriseID != propertyID {
			continue
		}
		if !svc.IsActive {
			continue
		}
		if svc.Data.Value.TimeUnitPeriod != "Day" {
			continue
		}
		bookable = append(bookable, svc)
	}

	if len(bookable) == 0 {
		return nil, ErrNoBookableServices
	}
	return bookable, nil
}
