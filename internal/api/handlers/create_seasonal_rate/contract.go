package create_seasonal_rate

import (
	"context"

	"github.com/akimovv/VRM-BookingService/internal/service/rates/models"
)

type RateService interface {
	Create(ctx context.Context, req *models.CreateRateRequest) (*models.RateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
