package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/akimovv/VRM-BookingService/internal/api/handlers"
	"github.com/akimovv/VRM-BookingService/internal/domain"
	checkAvailability "github.com/akimovv/VRM-BookingService/internal/usecase/check_availability"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgMissingDates      = "параметры check_in и check_out обязательны"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidExcludeID  = "некорректный параметр exclude_booking_id"
	msgPropertyNotFound  = "объект не найден"
	msgInvalidRange      = "дата выезда должна быть позже даты заезда"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/availability?check_in=...&check_out=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	propertyID, err := strconv.ParseInt(vars["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/availability - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	query := r.URL.Query()
	checkInStr := query.Get("check_in")
	checkOutStr := query.Get("check_out")
	if checkInStr == "" || checkOutStr == "" {
		h.logger.Warn("GET /properties/{id}/availability - Missing dates: property_id=%d", propertyID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	checkIn, err := time.Parse(domain.DateFormat, checkInStr)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/availability - Invalid check_in: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	checkOut, err := time.Parse(domain.DateFormat, checkOutStr)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/availability - Invalid check_out: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var excludeBookingID *int64
	if excludeStr := query.Get("exclude_booking_id"); excludeStr != "" {
		excludeID, err := strconv.ParseInt(excludeStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /properties/{id}/availability - Invalid exclude_booking_id: %v", err)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		excludeBookingID = &excludeID
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		PropertyID:       propertyID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		ExcludeBookingID: excludeBookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/availability - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidRange):
			h.logger.Warn("GET /properties/{id}/availability - Invalid range: property_id=%d", propertyID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /properties/{id}/availability - Failed: property_id=%d, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/availability - Checked: property_id=%d, available=%t",
		propertyID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
