package deactivate_seasonal_rate

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/akimovv/VRM-BookingService/internal/api/handlers"
	"github.com/akimovv/VRM-BookingService/internal/service/rates"
)

const (
	msgInvalidRateID = "некорректный ID тарифа"
	msgRateNotFound  = "сезонный тариф не найден"
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

// Handle DELETE /api/v1/seasonal-rates/{rateId}
// Тариф деактивируется, а не удаляется: существующие бронирования
// сохраняют ссылку на него в разбивке стоимости
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	rateID, err := strconv.ParseInt(vars["rateId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /seasonal-rates/{id} - Invalid rate ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRateID)
		return
	}

	if err := h.service.Deactivate(r.Context(), rateID); err != nil {
		switch {
		case errors.Is(err, rates.ErrRateNotFound):
			h.logger.Warn("DELETE /seasonal-rates/{id} - Rate not found: rate_id=%d", rateID)
			handlers.RespondNotFound(w, msgRateNotFound)

		default:
			h.logger.Error("DELETE /seasonal-rates/{id} - Failed: rate_id=%d, error=%v", rateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /seasonal-rates/{id} - Rate deactivated: rate_id=%d", rateID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
