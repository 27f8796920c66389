package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	"github.com/akimovv/VRM-BookingService/internal/integrations/guestservice"
	propertyRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/property"
)

// UseCase use case создания бронирования
//
// Проверка доступности и вставка выполняются внутри сериализуемой транзакции
// с блокировкой пересекающихся бронирований (FOR UPDATE): два конкурентных
// запроса на один период не могут оба пройти проверку
type UseCase struct {
	bookingRepo  BookingRepository
	propertyRepo PropertyRepository
	rateRepo     SeasonalRateRepository
	logRepo      BookingLogRepository
	guestClient  GuestServiceClient
	txManager    TransactionManager
	timeProvider TimeProvider
	weekendDays  []time.Weekday
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	propertyRepo PropertyRepository,
	rateRepo SeasonalRateRepository,
	logRepo BookingLogRepository,
	guestClient GuestServiceClient,
	txManager TransactionManager,
	timeProvider TimeProvider,
	weekendDays []time.Weekday,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		propertyRepo: propertyRepo,
		rateRepo:     rateRepo,
		logRepo:      logRepo,
		guestClient:  guestClient,
		txManager:    txManager,
		timeProvider: timeProvider,
		weekendDays:  weekendDays,
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: property=%d, user=%d, checkIn=%s, checkOut=%s, guests=%d, dp=%d%%",
		req.PropertyID, req.UserID, req.CheckIn.Format(domain.DateFormat),
		req.CheckOut.Format(domain.DateFormat), req.GuestCount, req.DPPercentage)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Строим диапазон проживания
	stay, err := domain.NewDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid date range: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	// 3. Получаем объект и проверяем, что он принимает бронирования
	property, err := uc.propertyRepo.GetByID(ctx, req.PropertyID)
	if err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			uc.logger.Warn("CreateBooking: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		uc.logger.Error("CreateBooking: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	if !property.IsActive {
		uc.logger.Warn("CreateBooking: property id=%d is not active", req.PropertyID)
		return nil, ErrPropertyInactive
	}

	// 4. Получаем профиль гостя до транзакции: внешний HTTP-вызов
	// внутри сериализуемой транзакции держал бы блокировки на время запроса
	guest, err := uc.guestClient.GetGuestWithGracefulDegradation(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, guestservice.ErrGuestNotFound) {
			uc.logger.Warn("CreateBooking: guest profile for user id=%d not found", req.UserID)
			return nil, ErrGuestNotFound
		}
		// Graceful degradation: создаем бронирование без данных гостя
		uc.logger.Warn("CreateBooking: proceeding without guest profile for user id=%d: %v", req.UserID, err)
		guest = nil
	}

	var created *domain.Booking

	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5. Получаем активные тарифы и считаем стоимость внутри транзакции,
		// чтобы расчет и вставка видели согласованный набор тарифов
		rates, err := uc.rateRepo.GetActiveByProperty(txCtx, req.PropertyID)
		if err != nil {
			return fmt.Errorf("%w: failed to get seasonal rates: %v", ErrInternal, err)
		}

		breakdown, err := domain.CalculateRate(property, domain.NewSeasonalRateSet(rates), stay, req.GuestCount, uc.weekendDays)
		if err != nil {
			return mapCalculationError(err)
		}

		split, err := domain.AllocateDeposit(breakdown.TotalAmount, req.DPPercentage)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDepositTier, err)
		}

		// 6. Проверяем доступность с блокировкой пересекающихся строк
		start := stay.Start()
		end := stay.End()
		overlapping, err := uc.bookingRepo.GetByPropertyWithFilter(txCtx, domain.PropertyBookingsFilter{
			PropertyID:      req.PropertyID,
			StartDate:       &start,
			EndDate:         &end,
			IncludeInactive: false,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
		}

		for _, existing := range overlapping {
			if existing.IsBlocking() && existing.DateRange().Overlaps(stay) {
				return fmt.Errorf("%w: conflicts with booking id=%d", ErrPropertyUnavailable, existing.ID)
			}
		}

		// 7. Собираем бронирование
		status := domain.StatusPendingVerification
		if req.Confirmed {
			status = domain.StatusConfirmed
		}

		booking := &domain.Booking{
			PropertyID: req.PropertyID,
			UserID:     req.UserID,
			GuestCount: req.GuestCount,
			CheckIn:    stay.Start(),
			CheckOut:   stay.End(),

			BaseAmount:               breakdown.BaseAmount,
			WeekendPremiumAmount:     breakdown.WeekendPremiumAmount,
			SeasonalAdjustmentAmount: breakdown.SeasonalAdjustmentAmount,
			ExtraBedAmount:           breakdown.ExtraBedAmount,
			CleaningFee:              breakdown.CleaningFee,
			TotalAmount:              breakdown.TotalAmount,
			AppliedSeasonalRate:      breakdown.AppliedSeasonalRate,

			DPPercentage:    req.DPPercentage,
			DPAmount:        split.DPAmount,
			RemainingAmount: split.RemainingAmount,
			PaymentStatus:   domain.PaymentDPPending,

			Status: status,
			Notes:  req.Notes,
		}

		// Денормализуем данные гостя: история бронирования не должна
		// меняться при последующем редактировании профиля
		if guest != nil {
			booking.GuestName = &guest.Name
			booking.GuestPhone = &guest.Phone
			booking.GuestEmail = &guest.Email
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		details := fmt.Sprintf("status=%s, total=%d, dp=%d", created.Status, created.TotalAmount, created.DPAmount)
		if _, err := uc.logRepo.Append(txCtx, &domain.BookingLogEntry{
			BookingID: created.ID,
			ActorID:   req.UserID,
			Event:     domain.EventBookingCreated,
			Details:   &details,
			CreatedAt: uc.timeProvider.Now(),
		}); err != nil {
			return fmt.Errorf("%w: failed to append booking log: %v", ErrInternal, err)
		}

		return nil
	})
	if txErr != nil {
		uc.logger.Warn("CreateBooking: transaction failed for property id=%d: %v", req.PropertyID, txErr)
		return nil, txErr
	}

	uc.logger.Info("CreateBooking: created booking id=%d, property=%d, total=%d, dp=%d, status=%s",
		created.ID, created.PropertyID, created.TotalAmount, created.DPAmount, created.Status)

	return &Response{Booking: created}, nil
}

// mapCalculationError транслирует доменные ошибки расчета в ошибки usecase
func mapCalculationError(err error) error {
	switch {
	case errors.Is(err, domain.ErrZeroNightStay):
		return fmt.Errorf("%w: %v", ErrZeroNightStay, err)
	case errors.Is(err, domain.ErrInvalidGuestCount):
		return fmt.Errorf("%w: %v", ErrInvalidGuestCount, err)
	case errors.Is(err, domain.ErrMinimumStayNotMet):
		return fmt.Errorf("%w: %v", ErrMinimumStayNotMet, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
