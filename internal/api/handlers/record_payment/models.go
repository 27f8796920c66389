package record_payment

import (
	"time"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	recordPayment "github.com/akimovv/VRM-BookingService/internal/usecase/record_payment"
)

// RecordPaymentRequest HTTP request model
type RecordPaymentRequest struct {
	Amount    int64   `json:"amount"` // Сумма в минимальных единицах валюты
	Method    string  `json:"method"` // bank_transfer, cash, qris, card
	Reference *string `json:"reference,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// PaymentResponse HTTP response model
type PaymentResponse struct {
	ID            int64   `json:"id"`
	BookingID     int64   `json:"bookingId"`
	Amount        int64   `json:"amount"`
	Method        string  `json:"method"`
	Reference     *string `json:"reference,omitempty"`
	Notes         *string `json:"notes,omitempty"`
	VerifiedAt    string  `json:"verifiedAt"` // ISO 8601 format
	PaymentStatus string  `json:"paymentStatus"`
	VerifiedTotal int64   `json:"verifiedTotal"`
	StatusChanged bool    `json:"statusChanged"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RecordPaymentRequest) ToUseCaseRequest(bookingID, actorID int64) *recordPayment.Request {
	return &recordPayment.Request{
		BookingID: bookingID,
		ActorID:   actorID,
		Amount:    domain.Money(r.Amount),
		Method:    r.Method,
		Reference: r.Reference,
		Notes:     r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *recordPayment.Response) *PaymentResponse {
	return &PaymentResponse{
		ID:            resp.Payment.ID,
		BookingID:     resp.Payment.BookingID,
		Amount:        int64(resp.Payment.Amount),
		Method:        resp.Payment.Method,
		Reference:     resp.Payment.Reference,
		Notes:         resp.Payment.Notes,
		VerifiedAt:    resp.Payment.VerifiedAt.Format(time.RFC3339),
		PaymentStatus: string(resp.PaymentStatus),
		VerifiedTotal: int64(resp.VerifiedTotal),
		StatusChanged: resp.StatusChanged,
	}
}
