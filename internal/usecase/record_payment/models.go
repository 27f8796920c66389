package record_payment

import "github.com/akimovv/VRM-BookingService/internal/domain"

// Request модель запроса на регистрацию верифицированного платежа
type Request struct {
	BookingID int64        // ID бронирования
	ActorID   int64        // ID менеджера, верифицировавшего платеж
	Amount    domain.Money // Сумма платежа в минимальных единицах валюты
	Method    string       // Способ оплаты: bank_transfer, cash, qris и т.д.
	Reference *string      // Номер транзакции или иной внешний идентификатор
	Notes     *string      // Комментарий менеджера
}

// Response модель ответа с зарегистрированным платежом и новым статусом оплаты
type Response struct {
	Payment       *domain.Payment
	PaymentStatus domain.PaymentStatus // Статус оплаты бронирования после платежа
	VerifiedTotal domain.Money         // Сумма всех верифицированных платежей
	StatusChanged bool                 // Изменился ли статус оплаты этим платежом
}
