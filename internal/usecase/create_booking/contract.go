package create_booking

import (
	"context"
	"time"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	"github.com/akimovv/VRM-BookingService/internal/integrations/guestservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByPropertyWithFilter(ctx context.Context, filter domain.PropertyBookingsFilter) ([]*domain.Booking, error)
}

// PropertyRepository интерфейс репозитория объектов
type PropertyRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Property, error)
}

// SeasonalRateRepository интерфейс репозитория сезонных тарифов
type SeasonalRateRepository interface {
	GetActiveByProperty(ctx context.Context, propertyID int64) ([]*domain.SeasonalRate, error)
}

// BookingLogRepository интерфейс append-only журнала событий
type BookingLogRepository interface {
	Append(ctx context.Context, entry *domain.BookingLogEntry) (*domain.BookingLogEntry, error)
}

// GuestServiceClient интерфейс клиента для GuestService
type GuestServiceClient interface {
	GetGuestWithGracefulDegradation(ctx context.Context, userID int64) (*guestservice.Guest, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
