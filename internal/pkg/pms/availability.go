package pms

import (
	"context"
	"sort"
)

const endpointServicesGetAvailability = "/api/connector/v1/services/getAvailability"

// unknownName is the display name used when a category carries no usable name.
const unknownName = "Unknown"

// Availability fetches per-day availability for one service and filters it
// against the resolved resource categories and party size.
type Availability struct {
	gw *Gateway
}

// NewAvailability creates an availability fetcher.
func NewAvailability(gw *Gateway) *Availability {
	return &Availability{gw: gw}
}

type availabilityResponse struct {
	CategoryAvailabilities []CategoryAvailability `json:"CategoryAvailabilities"`
}

// GetAvailableCategories returns the categories of a service that are
// effectively available on every day of the requested window, resolvable by
// id, and large enough for the requested party.
func (a *Availability) GetAvailableCategories(
	ctx context.Context,
	serviceID string,
	firstTimeUnitStartUTC string,
	lastTimeUnitStartUTC string,
	categories []ResourceCategory,
	adults int,
) ([]CategoryOption, error) {
	var resp availabilityResponse
	err := a.gw.Post(ctx, endpointServicesGetAvailability, map[string]interface{}{
		"ServiceId":             serviceID,
		"FirstTimeUnitStartUtc": firstTimeUnitStartUTC,
		"LastTimeUnitStartUtc":  lastTimeUnitStartUTC,
	}, &resp)
	if err != nil {
		return nil, err
	}

	return filterAvailabilities(resp.CategoryAvailabilities, categories, adults), nil
}

func filterAvailabilities(entries []CategoryAvailability, categories []ResourceCategory, adults int) []CategoryOption {
	var options []CategoryOption

	for _, entry := range entries {
		// A single day with effective availability <= 0 excludes the whole
		// category for this service.
		if !allDaysAvailable(entry) {
			continue
		}

		category, ok := findCategory(categories, entry.CategoryID)
		if !ok {
			continue
		}
		if category.Capacity < adults {
			continue
		}

		options = append(options, CategoryOption{
			CategoryID:     entry.CategoryID,
			Name:           CategoryDisplayName(category),
			Capacity:       category.Capacity,
			Availabilities: entry.Availabilities,
			Adjustments:    entry.Adjustments,
		})
	}

	return options
}

func allDaysAvailable(entry CategoryAvailability) bool {
	for i, count := range entry.Availabilities {
		adjustment := 0
		if i < len(entry.Adjustments) {
			adjustment = entry.Adjustments[i]
		}
		if count+adjustment <= 0 {
			return false
		}
	}
	return true
}

func findCategory(categories []ResourceCategory, id string) (ResourceCategory, bool) {
	for _, category := range categories {
		if category.ID == id {
			return category, true
		}
	}
	return ResourceCategory{}, false
}

// CategoryDisplayName resolves a human-readable category name: the en-US
// localized name, then the plain Name field, then the first localized name in
// lexicographic tag order, then "Unknown".
func CategoryDisplayName(category ResourceCategory) string {
	if name, ok := category.Names["en-US"]; ok && name != "" {
		return name
	}
	if category.Name != "" {
		return category.Name
	}
	if len(category.Names) > 0 {
		tags := make([]string, 0, len(category.Names))
		for tag := range category.Names {
			tags = append(tags, tag)
		}
		sort.Strings(tags)
		for _, tag := range tags {
			if category.Names[tag] != "" {
				return category.Names[tag]
			}
		}
	}
	return unknownName
}
