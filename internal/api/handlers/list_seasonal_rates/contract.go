package list_seasonal_rates

import (
	"context"

	"github.com/akimovv/VRM-BookingService/internal/service/rates/models"
)

type RateService interface {
	GetAllByProperty(ctx context.Context, propertyID int64, includeInactive bool) (*models.RateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
