package availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/roomdesk/roomdesk-api/internal/pkg/pms"
	"github.com/roomdesk/roomdesk-api/internal/pkg/response"
	"github.com/roomdesk/roomdesk-api/internal/pkg/validator"
)

// Handler for the availability API
type Handler struct {
	service *Service
}

// NewHandler creates an availability handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Get handles GET /availability
// @Summary Available room categories for a stay
// @Tags Availability
// @Produce json
// @Security BearerAuth
// @Param property_id query string true "Property ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Param adults query int true "Number of adults"
// @Success 200 {object} response.Response{data=Response}
// @Failure 401,404,422,502 {object} response.Response
// @Router /availability [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	adults := 0
	if raw := q.Get("adults"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "adults must be an integer")
			return
		}
		adults = parsed
	}

	req := Request{
		PropertyID: q.Get("property_id"),
		CheckIn:    q.Get("check_in"),
		CheckOut:   q.Get("check_out"),
		Adults:     adults,
	}

	if details := validator.Validate(req); details != nil {
		response.ValidationError(w, details)
		return
	}

	res, err := h.service.GetAvailability(r.Context(), req)
	if err != nil {
		h.respondError(w, err)
		return
	}

	response.OK(w, res)
}

func (h *Handler) respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidDateRange):
		response.Error(w, http.StatusUnprocessableEntity, "INVALID_DATE_RANGE", err.Error())
	case errors.Is(err, pms.ErrNoBookableServices):
		response.NotFound(w, "No bookable services found for this property")
	default:
		var reqErr *pms.RequestError
		if errors.As(err, &reqErr) {
			log.Error().
				Str("endpoint", reqErr.Endpoint).
				Int("status", reqErr.Status).
				Msg("PMS availability request failed")
			response.Error(w, http.StatusBadGateway, "PMS_UNAVAILABLE", "Failed to retrieve availability from property management system")
			return
		}
		log.Error().Err(err).Msg("Availability aggregation failed")
		response.InternalError(w)
	}
}
