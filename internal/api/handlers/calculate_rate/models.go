package calculate_rate

import (
	"time"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	calculateRate "github.com/akimovv/VRM-BookingService/internal/usecase/calculate_rate"
)

// CalculateRateRequest HTTP request model
type CalculateRateRequest struct {
	PropertyID int64  `json:"propertyId"`
	CheckIn    string `json:"checkIn"`  // "2026-07-10"
	CheckOut   string `json:"checkOut"` // "2026-07-13"
	GuestCount int    `json:"guestCount"`
}

// RateBreakdownResponse HTTP response model
type RateBreakdownResponse struct {
	PropertyID int64  `json:"propertyId"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	GuestCount int    `json:"guestCount"`
	Nights     int    `json:"nights"`

	BaseAmount               int64   `json:"baseAmount"`
	WeekendPremiumAmount     int64   `json:"weekendPremiumAmount"`
	SeasonalAdjustmentAmount int64   `json:"seasonalAdjustmentAmount"`
	ExtraBedAmount           int64   `json:"extraBedAmount"`
	CleaningFee              int64   `json:"cleaningFee"`
	TotalAmount              int64   `json:"totalAmount"`
	AppliedSeasonalRate      *string `json:"appliedSeasonalRate,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CalculateRateRequest) ToUseCaseRequest() (*calculateRate.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &calculateRate.Request{
		PropertyID: r.PropertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: r.GuestCount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculateRate.Response) *RateBreakdownResponse {
	return &RateBreakdownResponse{
		PropertyID:               resp.PropertyID,
		CheckIn:                  resp.CheckIn.Format(domain.DateFormat),
		CheckOut:                 resp.CheckOut.Format(domain.DateFormat),
		GuestCount:               resp.GuestCount,
		Nights:                   resp.Nights,
		BaseAmount:               int64(resp.BaseAmount),
		WeekendPremiumAmount:     int64(resp.WeekendPremiumAmount),
		SeasonalAdjustmentAmount: int64(resp.SeasonalAdjustmentAmount),
		ExtraBedAmount:           int64(resp.ExtraBedAmount),
		CleaningFee:              int64(resp.CleaningFee),
		TotalAmount:              int64(resp.TotalAmount),
		AppliedSeasonalRate:      resp.AppliedSeasonalRate,
	}
}
