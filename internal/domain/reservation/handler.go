package reservation

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/roomdesk/roomdesk-api/internal/pkg/pms"
	"github.com/roomdesk/roomdesk-api/internal/pkg/response"
	"github.com/roomdesk/roomdesk-api/internal/pkg/validator"
)

// Handler for the reservations API
type Handler struct {
	service *Service
}

// NewHandler creates a reservation handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List handles GET /reservations
// @Summary Reservations of a property
// @Tags Reservation
// @Produce json
// @Security BearerAuth
// @Param property_id query string true "Property ID"
// @Param check_in query string true "Range start date (YYYY-MM-DD)"
// @Param check_out query string false "Range end date (YYYY-MM-DD), defaults to check_in + 1 year"
// @Param status query string false "Status filter (confirmed|pending|cancelled)"
// @Success 200 {object} response.Response{data=Response}
// @Failure 401,422,502 {object} response.Response
// @Router /reservations [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	req := Request{
		PropertyID: q.Get("property_id"),
		CheckIn:    q.Get("check_in"),
	}
	if checkOut := q.Get("check_out"); checkOut != "" {
		req.CheckOut = &checkOut
	}
	if status := q.Get("status"); status != "" {
		req.Status = &status
	}

	if details := validator.Validate(req); details != nil {
		response.ValidationError(w, details)
		return
	}

	res, err := h.service.GetReservations(r.Context(), req)
	if err != nil {
		var reqErr *pms.RequestError
		if errors.As(err, &reqErr) {
			log.Error().
				Str("endpoint", reqErr.Endpoint).
				Int("status", reqErr.Status).
				Msg("PMS reservations request failed")
			response.Error(w, http.StatusBadGateway, "PMS_UNAVAILABLE", "Failed to retrieve reservations from property management system")
			return
		}
		log.Error().Err(err).Msg("Reservation listing failed")
		response.InternalError(w)
		return
	}

	response.OK(w, res)
}
