package calculate_rate

import (
	"errors"
	"net/http"

	"github.com/akimovv/VRM-BookingService/internal/api/handlers"
	calculateRate "github.com/akimovv/VRM-BookingService/internal/usecase/calculate_rate"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgPropertyNotFound   = "объект не найден"
	msgPropertyInactive   = "объект не принимает бронирования"
	msgInvalidRange       = "дата выезда должна быть позже даты заезда"
	msgZeroNightStay      = "проживание должно включать хотя бы одну ночь"
	msgInvalidGuestCount  = "количество гостей превышает вместимость объекта"
	msgMinimumStayNotMet  = "проживание короче минимально допустимого"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CalculateRateUseCase
	logger  Logger
}

func NewHandler(useCase CalculateRateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rates/calculate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CalculateRateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rates/calculate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /rates/calculate - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, calculateRate.ErrPropertyNotFound):
			h.logger.Warn("POST /rates/calculate - Property not found: property_id=%d", req.PropertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, calculateRate.ErrPropertyInactive):
			h.logger.Warn("POST /rates/calculate - Property inactive: property_id=%d", req.PropertyID)
			handlers.RespondError(w, http.StatusConflict, msgPropertyInactive)

		case errors.Is(err, calculateRate.ErrInvalidRange):
			h.logger.Warn("POST /rates/calculate - Invalid range: property_id=%d", req.PropertyID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, calculateRate.ErrZeroNightStay):
			h.logger.Warn("POST /rates/calculate - Zero night stay: property_id=%d", req.PropertyID)
			handlers.RespondBadRequest(w, msgZeroNightStay)

		case errors.Is(err, calculateRate.ErrInvalidGuestCount):
			h.logger.Warn("POST /rates/calculate - Invalid guest count: property_id=%d, guests=%d", req.PropertyID, req.GuestCount)
			handlers.RespondBadRequest(w, msgInvalidGuestCount)

		case errors.Is(err, calculateRate.ErrMinimumStayNotMet):
			h.logger.Warn("POST /rates/calculate - Minimum stay not met: property_id=%d", req.PropertyID)
			handlers.RespondBadRequest(w, msgMinimumStayNotMet)

		case errors.Is(err, calculateRate.ErrInvalidInput):
			h.logger.Warn("POST /rates/calculate - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rates/calculate - Failed to calculate rate: property_id=%d, error=%v", req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rates/calculate - Rate calculated: property_id=%d, nights=%d, total=%d",
		req.PropertyID, result.Nights, result.TotalAmount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
