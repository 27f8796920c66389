package calculate_rate

import (
	"context"

	calculateRate "github.com/akimovv/VRM-BookingService/internal/usecase/calculate_rate"
)

type CalculateRateUseCase interface {
	Execute(ctx context.Context, req *calculateRate.Request) (*calculateRate.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
