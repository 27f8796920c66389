package record_payment

import "fmt"

var allowedMethods = map[string]bool{
	"bank_transfer": true,
	"cash":          true,
	"qris":          true,
	"card":          true,
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.ActorID <= 0 {
		return fmt.Errorf("%w: actorID must be positive", ErrInvalidInput)
	}

	if req.Amount <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidAmount, req.Amount)
	}

	if !allowedMethods[req.Method] {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidInput, req.Method)
	}

	return nil
}
