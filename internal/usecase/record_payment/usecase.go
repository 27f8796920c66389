package record_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	bookingRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/booking"
)

// UseCase use case регистрации верифицированного платежа
//
// Платеж, пересчет суммы и продвижение статуса оплаты выполняются в одной
// сериализуемой транзакции с блокировкой строки бронирования: конкурентные
// платежи по одному бронированию сериализуются
type UseCase struct {
	bookingRepo  BookingRepository
	paymentRepo  PaymentRepository
	logRepo      BookingLogRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	paymentRepo PaymentRepository,
	logRepo BookingLogRepository,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		paymentRepo:  paymentRepo,
		logRepo:      logRepo,
		txManager:    txManager,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case регистрации платежа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RecordPayment: booking=%d, amount=%d, method=%s, actor=%d",
		req.BookingID, req.Amount, req.Method, req.ActorID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RecordPayment: validation failed: %v", err)
		return nil, err
	}

	var resp *Response

	txErr := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Получаем бронирование с блокировкой строки
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		if !booking.CanAcceptPayment() {
			return fmt.Errorf("%w: booking id=%d, status=%s, payment status=%s",
				ErrPaymentNotAllowed, booking.ID, booking.Status, booking.PaymentStatus)
		}

		// 3. Регистрируем платеж
		now := uc.timeProvider.Now()
		payment, err := uc.paymentRepo.Create(txCtx, &domain.Payment{
			BookingID:  req.BookingID,
			Amount:     req.Amount,
			Method:     req.Method,
			Reference:  req.Reference,
			Notes:      req.Notes,
			VerifiedAt: now,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create payment: %v", ErrInternal, err)
		}

		// 4. Пересчитываем сумму верифицированных платежей и продвигаем статус
		verifiedTotal, err := uc.paymentRepo.SumVerifiedByBooking(txCtx, req.BookingID)
		if err != nil {
			return fmt.Errorf("%w: failed to sum verified payments: %v", ErrInternal, err)
		}

		newStatus := domain.AdvancePaymentStatus(booking.PaymentStatus, verifiedTotal, booking.DPAmount, booking.TotalAmount)
		statusChanged := newStatus != booking.PaymentStatus

		if statusChanged {
			if err := uc.bookingRepo.UpdatePaymentStatus(txCtx, booking.ID, newStatus); err != nil {
				return fmt.Errorf("%w: failed to update payment status: %v", ErrInternal, err)
			}

			details := fmt.Sprintf("%s -> %s, verified total=%d", booking.PaymentStatus, newStatus, verifiedTotal)
			if _, err := uc.logRepo.Append(txCtx, &domain.BookingLogEntry{
				BookingID: booking.ID,
				ActorID:   req.ActorID,
				Event:     domain.EventPaymentStatusChange,
				Details:   &details,
				CreatedAt: now,
			}); err != nil {
				return fmt.Errorf("%w: failed to append booking log: %v", ErrInternal, err)
			}
		}

		details := fmt.Sprintf("amount=%d, method=%s", payment.Amount, payment.Method)
		if _, err := uc.logRepo.Append(txCtx, &domain.BookingLogEntry{
			BookingID: booking.ID,
			ActorID:   req.ActorID,
			Event:     domain.EventPaymentRecorded,
			Details:   &details,
			CreatedAt: now,
		}); err != nil {
			return fmt.Errorf("%w: failed to append booking log: %v", ErrInternal, err)
		}

		resp = &Response{
			Payment:       payment,
			PaymentStatus: newStatus,
			VerifiedTotal: verifiedTotal,
			StatusChanged: statusChanged,
		}
		return nil
	})
	if txErr != nil {
		uc.logger.Warn("RecordPayment: transaction failed for booking id=%d: %v", req.BookingID, txErr)
		return nil, txErr
	}

	uc.logger.Info("RecordPayment: booking=%d, payment id=%d, verified total=%d, payment status=%s (changed=%t)",
		req.BookingID, resp.Payment.ID, resp.VerifiedTotal, resp.PaymentStatus, resp.StatusChanged)

	return resp, nil
}
