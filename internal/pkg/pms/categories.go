package pms

import "context"

const endpointResourceCategoriesGetAll = "/api/connector/v1/resourceCategories/getAll"

// maxServiceIDsPerCall is the upstream limit on service ids per
// resourceCategories/getAll request.
const maxServiceIDsPerCall = 1000

// ResourceCategories fetches room-category metadata for batches of services.
type ResourceCategories struct {
	gw *Gateway
}

// NewResourceCategories creates a resource category fetcher.
func NewResourceCategories(gw *Gateway) *ResourceCategories {
	return &ResourceCategories{gw: gw}
}

type resourceCategoriesResponse struct {
	ResourceCategories []ResourceCategory `json:"ResourceCategories"`
}

// GetForServices returns the resource categories of the given services,
// issuing one upstream call per chunk of at most 1,000 service ids and
// concatenating results in chunk order.
func (c *ResourceCategories) GetForServices(ctx context.Context, serviceIDs []string) ([]ResourceCategory, error) {
	var all []ResourceCategory
	for start := 0; start < len(serviceIDs); start += maxServiceIDsPerCall {
		end := start + maxServiceIDsPerCall
		if end > len(serviceIDs) {
			end = len(serviceIDs)
		}

		var resp resourceCategoriesResponse
		err := c.gw.Post(ctx, endpointResourceCategoriesGetAll, map[string]interface{}{
			"ServiceIds": serviceIDs[start:end],
		}, &resp)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.ResourceCategories...)
	}
	return all, nil
}
