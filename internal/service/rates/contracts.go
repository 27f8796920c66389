package rates

import (
	"context"

	"github.com/akimovv/VRM-BookingService/internal/domain"
)

// SeasonalRateRepository интерфейс репозитория сезонных тарифов
type SeasonalRateRepository interface {
	Create(ctx context.Context, rate *domain.SeasonalRate) (*domain.SeasonalRate, error)
	GetByID(ctx context.Context, id int64) (*domain.SeasonalRate, error)
	GetActiveByProperty(ctx context.Context, propertyID int64) ([]*domain.SeasonalRate, error)
	GetAllByProperty(ctx context.Context, propertyID int64) ([]*domain.SeasonalRate, error)
	Deactivate(ctx context.Context, id int64) error
}

// PropertyRepository интерфейс репозитория объектов
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
