package models

import (
	"errors"
	"time"

	"github.com/akimovv/VRM-BookingService/internal/domain"
)

var (
	// ErrInvalidRateType возвращается при некорректном типе тарифа
	ErrInvalidRateType = errors.New("invalid rate type")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format, expected YYYY-MM-DD")
)

// Request модели

// CreateRateRequest запрос на создание сезонного тарифа
type CreateRateRequest struct {
	PropertyID            int64   `json:"propertyId"`
	Name                  string  `json:"name"`
	StartDate             string  `json:"startDate"` // "2026-12-20"
	EndDate               string  `json:"endDate"`   // "2027-01-05"
	RateType              string  `json:"rateType"`  // fixed | percentage | multiplier
	RateValue             float64 `json:"rateValue"`
	MinStayNights         int     `json:"minStayNights"`
	AppliesToWeekendsOnly bool    `json:"appliesToWeekendsOnly,omitempty"`
	ApplicableDaysOfWeek  []int   `json:"applicableDaysOfWeek,omitempty"` // 0-6, воскресенье = 0
	Priority              int     `json:"priority"`
}

// ToDomainRate конвертирует request в domain модель
func (r *CreateRateRequest) ToDomainRate() (*domain.SeasonalRate, error) {
	rateType, err := ToDomainRateType(r.RateType)
	if err != nil {
		return nil, err
	}

	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	return &domain.SeasonalRate{
		PropertyID:            r.PropertyID,
		Name:                  r.Name,
		StartDate:             startDate,
		EndDate:               endDate,
		RateType:              rateType,
		RateValue:             r.RateValue,
		MinStayNights:         r.MinStayNights,
		AppliesToWeekendsOnly: r.AppliesToWeekendsOnly,
		ApplicableDaysOfWeek:  r.ApplicableDaysOfWeek,
		Priority:              r.Priority,
		IsActive:              true,
	}, nil
}

// Response модели

// RateResponse ответ с данными сезонного тарифа
type RateResponse struct {
	ID                    int64     `json:"id"`
	PropertyID            int64     `json:"propertyId"`
	Name                  string    `json:"name"`
	StartDate             string    `json:"startDate"`
	EndDate               string    `json:"endDate"`
	RateType              string    `json:"rateType"`
	RateValue             float64   `json:"rateValue"`
	MinStayNights         int       `json:"minStayNights"`
	AppliesToWeekendsOnly bool      `json:"appliesToWeekendsOnly"`
	ApplicableDaysOfWeek  []int     `json:"applicableDaysOfWeek,omitempty"`
	Priority              int       `json:"priority"`
	IsActive              bool      `json:"isActive"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// RateListResponse ответ со списком сезонных тарифов
type RateListResponse struct {
	Rates []RateResponse `json:"rates"`
}

// Методы конвертации

// FromDomainRate конвертирует domain модель в DTO
func FromDomainRate(r *domain.SeasonalRate) *RateResponse {
	if r == nil {
		return nil
	}

	return &RateResponse{
		ID:                    r.ID,
		PropertyID:            r.PropertyID,
		Name:                  r.Name,
		StartDate:             r.StartDate.Format(domain.DateFormat),
		EndDate:               r.EndDate.Format(domain.DateFormat),
		RateType:              string(r.RateType),
		RateValue:             r.RateValue,
		MinStayNights:         r.MinStayNights,
		AppliesToWeekendsOnly: r.AppliesToWeekendsOnly,
		ApplicableDaysOfWeek:  r.ApplicableDaysOfWeek,
		Priority:              r.Priority,
		IsActive:              r.IsActive,
		CreatedAt:             r.CreatedAt,
		UpdatedAt:             r.UpdatedAt,
	}
}

// FromDomainRateList конвертирует список domain моделей в DTO
func FromDomainRateList(rates []*domain.SeasonalRate) *RateListResponse {
	if rates == nil {
		return &RateListResponse{
			Rates: []RateResponse{},
		}
	}

	resp := &RateListResponse{
		Rates: make([]RateResponse, len(rates)),
	}

	for i, rate := range rates {
		if rateResp := FromDomainRate(rate); rateResp != nil {
			resp.Rates[i] = *rateResp
		}
	}

	return resp
}

// ToDomainRateType конвертирует строку в domain.RateType с валидацией
func ToDomainRateType(rateType string) (domain.RateType, error) {
	t := domain.RateType(rateType)

	for _, valid := range domain.ValidRateTypes {
		if t == valid {
			return t, nil
		}
	}

	return "", ErrInvalidRateType
}
