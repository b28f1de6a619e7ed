package pms

import "context"

const endpointReservationsGetAll = "/api/connector/v1/reservations/getAll"

// Reservations fetches raw reservations for a date range and state filter.
type Reservations struct {
	gw *Gateway
}

// NewReservations creates a reservations fetcher.
func NewReservations(gw *Gateway) *Reservations {
	return &Reservations{gw: gw}
}

// GetAll returns the raw reservations of an enterprise in the given UTC range
// together with the related customers, resources, categories and services.
func (r *Reservations) GetAll(ctx context.Context, enterpriseID string, states []string, startUTC, endUTC string) (*ReservationsPayload, error) {
	var payload ReservationsPayload
	err := r.gw.Post(ctx, endpointReservationsGetAll, map[string]interface{}{
		"EnterpriseIds": []string{enterpriseID},
		"States":        states,
		"StartUtc":      startUTC,
		"EndUtc":        endUTC,
	}, &payload)
	if err != nil {
		return nil, err
	}
	return &payload, nil
}
