package create_booking

import (
	"errors"
	"net/http"

	"github.com/akimovv/VRM-BookingService/internal/api/handlers"
	"github.com/akimovv/VRM-BookingService/internal/api/middleware"
	createBooking "github.com/akimovv/VRM-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgPropertyNotFound    = "объект не найден"
	msgPropertyInactive    = "объект не принимает бронирования"
	msgGuestNotFound       = "профиль гостя не найден"
	msgInvalidRange        = "дата выезда должна быть позже даты заезда"
	msgZeroNightStay       = "проживание должно включать хотя бы одну ночь"
	msgInvalidGuestCount   = "количество гостей превышает вместимость объекта"
	msgMinimumStayNotMet   = "проживание короче минимально допустимого"
	msgInvalidDepositTier  = "процент депозита должен быть одним из: 30, 50, 70, 100"
	msgPropertyUnavailable = "объект занят на выбранные даты"
	msgInvalidInput        = "некорректные входные данные"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrPropertyUnavailable):
			h.logger.Warn("POST /bookings - Property unavailable: property_id=%d, user_id=%d", req.PropertyID, userID)
			handlers.RespondError(w, http.StatusConflict, msgPropertyUnavailable)

		case errors.Is(err, createBooking.ErrPropertyNotFound):
			h.logger.Warn("POST /bookings - Property not found: property_id=%d", req.PropertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, createBooking.ErrPropertyInactive):
			h.logger.Warn("POST /bookings - Property inactive: property_id=%d", req.PropertyID)
			handlers.RespondError(w, http.StatusConflict, msgPropertyInactive)

		case errors.Is(err, createBooking.ErrGuestNotFound):
			h.logger.Warn("POST /bookings - Guest not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgGuestNotFound)

		case errors.Is(err, createBooking.ErrInvalidRange):
			h.logger.Warn("POST /bookings - Invalid range: property_id=%d, user_id=%d", req.PropertyID, userID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, createBooking.ErrZeroNightStay):
			h.logger.Warn("POST /bookings - Zero night stay: property_id=%d, user_id=%d", req.PropertyID, userID)
			handlers.RespondBadRequest(w, msgZeroNightStay)

		case errors.Is(err, createBooking.ErrInvalidGuestCount):
			h.logger.Warn("POST /bookings - Invalid guest count: property_id=%d, guests=%d", req.PropertyID, req.GuestCount)
			handlers.RespondBadRequest(w, msgInvalidGuestCount)

		case errors.Is(err, createBooking.ErrMinimumStayNotMet):
			h.logger.Warn("POST /bookings - Minimum stay not met: property_id=%d, user_id=%d", req.PropertyID, userID)
			handlers.RespondBadRequest(w, msgMinimumStayNotMet)

		case errors.Is(err, createBooking.ErrInvalidDepositTier):
			h.logger.Warn("POST /bookings - Invalid deposit tier: dp=%d, user_id=%d", req.DPPercentage, userID)
			handlers.RespondBadRequest(w, msgInvalidDepositTier)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: property_id=%d, user_id=%d, error=%v",
				req.PropertyID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, property_id=%d, user_id=%d, total=%d",
		result.Booking.ID, req.PropertyID, userID, result.Booking.TotalAmount)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
