package models

import (
	"errors"
	"time"

	"github.com/akimovv/VRM-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// GetPropertyBookingsRequest запрос на получение бронирований объекта
type GetPropertyBookingsRequest struct {
	PropertyID      int64      `json:"propertyId"`
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отмененные и no-show
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetPropertyBookingsRequest) ToDomainFilter() (domain.PropertyBookingsFilter, error) {
	filter := domain.PropertyBookingsFilter{
		PropertyID:      r.PropertyID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64  `json:"id"`
	PropertyID int64  `json:"propertyId"`
	UserID     int64  `json:"userId"`
	GuestCount int    `json:"guestCount"`
	CheckIn    string `json:"checkIn"`  // "2026-07-10"
	CheckOut   string `json:"checkOut"` // "2026-07-13"
	Nights     int    `json:"nights"`
	Status     string `json:"status"`

	// Разбивка стоимости в минимальных единицах валюты
	BaseAmount               int64   `json:"baseAmount"`
	WeekendPremiumAmount     int64   `json:"weekendPremiumAmount"`
	SeasonalAdjustmentAmount int64   `json:"seasonalAdjustmentAmount"`
	ExtraBedAmount           int64   `json:"extraBedAmount"`
	CleaningFee              int64   `json:"cleaningFee"`
	TotalAmount              int64   `json:"totalAmount"`
	AppliedSeasonalRate      *string `json:"appliedSeasonalRate,omitempty"`

	// Депозит и остаток
	DPPercentage    int    `json:"dpPercentage"`
	DPAmount        int64  `json:"dpAmount"`
	RemainingAmount int64  `json:"remainingAmount"`
	PaymentStatus   string `json:"paymentStatus"`

	// Денормализованные данные гостя
	GuestName  *string `json:"guestName,omitempty"`
	GuestPhone *string `json:"guestPhone,omitempty"`
	GuestEmail *string `json:"guestEmail,omitempty"`
	Notes      *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// BookingLogEntryResponse запись журнала событий бронирования
type BookingLogEntryResponse struct {
	ID        int64     `json:"id"`
	BookingID int64     `json:"bookingId"`
	ActorID   int64     `json:"actorId"`
	Event     string    `json:"event"`
	Details   *string   `json:"details,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookingLogResponse ответ с журналом событий бронирования
type BookingLogResponse struct {
	BookingID int64                     `json:"bookingId"`
	Entries   []BookingLogEntryResponse `json:"entries"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:         b.ID,
		PropertyID: b.PropertyID,
		UserID:     b.UserID,
		GuestCount: b.GuestCount,
		CheckIn:    b.CheckIn.Format(domain.DateFormat),
		CheckOut:   b.CheckOut.Format(domain.DateFormat),
		Nights:     b.DateRange().Nights(),
		Status:     string(b.Status),

		BaseAmount:               int64(b.BaseAmount),
		WeekendPremiumAmount:     int64(b.WeekendPremiumAmount),
		SeasonalAdjustmentAmount: int64(b.SeasonalAdjustmentAmount),
		ExtraBedAmount:           int64(b.ExtraBedAmount),
		CleaningFee:              int64(b.CleaningFee),
		TotalAmount:              int64(b.TotalAmount),
		AppliedSeasonalRate:      b.AppliedSeasonalRate,

		DPPercentage:    b.DPPercentage,
		DPAmount:        int64(b.DPAmount),
		RemainingAmount: int64(b.RemainingAmount),
		PaymentStatus:   string(b.PaymentStatus),

		GuestName:  b.GuestName,
		GuestPhone: b.GuestPhone,
		GuestEmail: b.GuestEmail,
		Notes:      b.Notes,

		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// FromDomainBookingLog конвертирует записи журнала в DTO
func FromDomainBookingLog(bookingID int64, entries []*domain.BookingLogEntry) *BookingLogResponse {
	resp := &BookingLogResponse{
		BookingID: bookingID,
		Entries:   make([]BookingLogEntryResponse, 0, len(entries)),
	}

	for _, entry := range entries {
		resp.Entries = append(resp.Entries, BookingLogEntryResponse{
			ID:        entry.ID,
			BookingID: entry.BookingID,
			ActorID:   entry.ActorID,
			Event:     string(entry.Event),
			Details:   entry.Details,
			CreatedAt: entry.CreatedAt,
		})
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	for _, valid := range domain.ValidBookingStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
