package get_booking_log

import (
	"context"

	"github.com/akimovv/VRM-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetBookingLog(ctx context.Context, bookingID int64) (*models.BookingLogResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
