package list_seasonal_rates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/akimovv/VRM-BookingService/internal/api/handlers"
	"github.com/akimovv/VRM-BookingService/internal/service/rates"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgPropertyNotFound  = "объект не найден"
)

type Handler struct {
	service RateService
	logger  Logger
}

func NewHandler(service RateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/rates?include_inactive=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/rates - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	includeInactive := r.URL.Query().Get("include_inactive") == "true"

	result, err := h.service.GetAllByProperty(r.Context(), propertyID, includeInactive)
	if err != nil {
		switch {
		case errors.Is(err, rates.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/rates - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		default:
			h.logger.Error("GET /properties/{id}/rates - Failed: property_id=%d, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/rates - Retrieved %d rates: property_id=%d", len(result.Rates), propertyID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
