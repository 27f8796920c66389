package domain

import "time"

// Payment верифицированный платеж по бронированию
// В расчетах статуса оплаты участвуют только верифицированные платежи
type Payment struct {
	ID        int64
	BookingID int64
	Amount    Money
	Method    string // bank_transfer, cash, qris и т.д.
	Reference *string
	Notes     *string

	VerifiedAt time.Time
	CreatedAt  time.Time
}

// AdvancePaymentStatus возвращает новый статус оплаты по сумме верифицированных платежей
// Статус продвигается только вперед: dp_pending -> dp_received -> fully_paid
// Откат назад невозможен; refund - отдельное явное действие вне этого компонента
func AdvancePaymentStatus(current PaymentStatus, verifiedTotal, dpAmount, totalAmount Money) PaymentStatus {
	next := current

	switch {
	case verifiedTotal >= totalAmount:
		next = PaymentFullyPaid
	case verifiedTotal >= dpAmount:
		next = PaymentDPReceived
	}

	// Монотонность: никогда не понижаем статус
	if paymentStatusRank[next] < paymentStatusRank[current] {
		return current
	}
	return next
}
