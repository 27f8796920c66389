package create_booking

import (
	"time"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	"github.com/akimovv/VRM-BookingService/internal/service/bookings/models"
	createBooking "github.com/akimovv/VRM-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PropertyID   int64   `json:"propertyId"`
	CheckIn      string  `json:"checkIn"`  // "2026-07-10"
	CheckOut     string  `json:"checkOut"` // "2026-07-13"
	GuestCount   int     `json:"guestCount"`
	DPPercentage int     `json:"dpPercentage"` // 30, 50, 70 или 100
	Confirmed    bool    `json:"confirmed,omitempty"`
	Notes        *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		PropertyID:   r.PropertyID,
		UserID:       userID,
		CheckIn:      checkIn,
		CheckOut:     checkOut,
		GuestCount:   r.GuestCount,
		DPPercentage: r.DPPercentage,
		Confirmed:    r.Confirmed,
		Notes:        r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
	return models.FromDomainBooking(resp.Booking)
}
