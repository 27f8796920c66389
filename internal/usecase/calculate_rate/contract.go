package calculate_rate

import (
	"context"

	"github.com/akimovv/VRM-BookingService/internal/domain"
)

// PropertyRepository интерфейс репозитория объектов
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// SeasonalRateRepository интерфейс репозитория сезонных тарифов
type SeasonalRateRepository interface {
	GetActiveByProperty(ctx context.Context, propertyID int64) ([]*domain.SeasonalRate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
