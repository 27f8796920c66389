package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	propertyRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/property"
)

// UseCase use case проверки доступности дат
// Проверка advisory: результат верен на момент чтения, защита от гонки
// одновременных созданий обеспечивается сериализуемой транзакцией create_booking
type UseCase struct {
	propertyRepo PropertyRepository
	bookingRepo  BookingRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	propertyRepo PropertyRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		propertyRepo: propertyRepo,
		bookingRepo:  bookingRepo,
		logger:       logger,
	}
}

// Execute выполняет use case проверки доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: property=%d, checkIn=%s, checkOut=%s",
		req.PropertyID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим диапазон проживания
	stay, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Warn("CheckAvailability: invalid date range: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	// 3. Проверяем существование объекта
	if _, err := uc.propertyRepo.GetByID(ctx, req.PropertyID); err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("CheckAvailability: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 4. Получаем блокирующие бронирования, пересекающиеся с периодом
	// Отмененные и no-show бронирования отфильтрованы на уровне репозитория
	start := stay.Start()
	end := stay.End()
	filter := domain.PropertyBookingsFilter{
		PropertyID:      req.PropertyID,
		StartDate:       &start,
		EndDate:         &end,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByPropertyWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	available := isRangeFree(stay, bookings, req.ExcludeBookingID)

	uc.logger.Info("CheckAvailability: property=%d, available=%t (%d candidate bookings)",
		req.PropertyID, available, len(bookings))

	return &Response{
		PropertyID: req.PropertyID,
		CheckIn:    stay.Start(),
		CheckOut:   stay.End(),
		Available:  available,
	}, nil
}

// isRangeFree проверяет, что диапазон свободен от пересечений с блокирующими бронированиями
// Полуоткрытая семантика: выезд и заезд в один день не пересекаются (same-day turnover)
// excludeBookingID позволяет игнорировать редактируемое бронирование
func isRangeFree(stay domain.DateRange, bookings []*domain.Booking, excludeBookingID *int64) bool {
	for _, booking := range bookings {
		if excludeBookingID != nil && booking.ID == *excludeBookingID {
			continue
		}
		// Пропускаем неблокирующие бронирования
		if !booking.IsBlocking() {
			continue
		}
		if booking.DateRange().Overlaps(stay) {
			return false
		}
	}
	return true
}
