package rates

import (
	"context"
	"errors"
	"fmt"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	propertyRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/property"
	rateRepo "github.com/akimovv/VRM-BookingService/internal/infra/storage/seasonalrate"
	"github.com/akimovv/VRM-BookingService/internal/service/rates/models"
)

// Service сервис для работы с сезонными тарифами
type Service struct {
	rateRepo     SeasonalRateRepository
	propertyRepo PropertyRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса тарифов
func NewService(
	rateRepo SeasonalRateRepository,
	propertyRepo PropertyRepository,
	logger Logger,
) *Service {
	return &Service{
		rateRepo:     rateRepo,
		propertyRepo: propertyRepo,
		logger:       logger,
	}
}

// Create создает новый сезонный тариф
// Пересечение периодов тарифов допустимо: при расчете побеждает тариф
// с наибольшим приоритетом
func (s *Service) Create(ctx context.Context, req *models.CreateRateRequest) (*models.RateResponse, error) {
	s.logger.Info("Create: creating seasonal rate %q for property=%d, type=%s, priority=%d",
		req.Name, req.PropertyID, req.RateType, req.Priority)

	// 1. Конвертируем и валидируем входные данные
	rate, err := req.ToDomainRate()
	if err != nil {
		s.logger.Warn("Create: invalid request for property=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.validateRateData(rate); err != nil {
		s.logger.Warn("Create: validation failed for property=%d: %v", req.PropertyID, err)
		return nil, err
	}

	// 2. Проверяем существование объекта
	if _, err := s.propertyRepo.GetByID(ctx, req.PropertyID); err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("Create: property id=%d not found", req.PropertyID)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("Create: failed to get property id=%d: %v", req.PropertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	// 3. Создаем тариф
	created, err := s.rateRepo.Create(ctx, rate)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created seasonal rate id=%d", created.ID)
	return models.FromDomainRate(created), nil
}

// GetAllByProperty получает тарифы объекта
// При includeInactive=false возвращаются только активные тарифы
func (s *Service) GetAllByProperty(ctx context.Context, propertyID int64, includeInactive bool) (*models.RateListResponse, error) {
	s.logger.Info("GetAllByProperty: fetching rates for property=%d, includeInactive=%t", propertyID, includeInactive)

	// Проверяем существование объекта
	if _, err := s.propertyRepo.GetByID(ctx, propertyID); err != nil {
		if errors.Is(err, propertyRepo.ErrPropertyNotFound) {
			s.logger.Warn("GetAllByProperty: property id=%d not found", propertyID)
			return nil, ErrPropertyNotFound
		}
		s.logger.Error("GetAllByProperty: failed to get property id=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: failed to get property: %v", ErrInternal, err)
	}

	var (
		rates []*domain.SeasonalRate
		err   error
	)
	if includeInactive {
		rates, err = s.rateRepo.GetAllByProperty(ctx, propertyID)
	} else {
		rates, err = s.rateRepo.GetActiveByProperty(ctx, propertyID)
	}
	if err != nil {
		s.logger.Error("GetAllByProperty: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: GetAllByProperty - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAllByProperty: successfully fetched %d rates for property=%d", len(rates), propertyID)
	return models.FromDomainRateList(rates), nil
}

// Deactivate деактивирует сезонный тариф
// Тариф не удаляется: уже созданные бронирования ссылаются на него в разбивке
// стоимости, а неактивный тариф исключается из будущих расчетов
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("Deactivate: deactivating seasonal rate id=%d", id)

	if err := s.rateRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, rateRepo.ErrRateNotFound) {
			s.logger.Warn("Deactivate: seasonal rate id=%d not found", id)
			return ErrRateNotFound
		}
		s.logger.Error("Deactivate: repository error for rate id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Deactivate: successfully deactivated seasonal rate id=%d", id)
	return nil
}

// validateRateData валидирует параметры тарифа
func (s *Service) validateRateData(rate *domain.SeasonalRate) error {
	if rate.PropertyID <= 0 {
		return fmt.Errorf("%w: propertyId must be positive", ErrInvalidInput)
	}

	if rate.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if rate.EndDate.Before(rate.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", ErrInvalidInput)
	}

	switch rate.RateType {
	case domain.RateTypeFixed:
		if rate.RateValue <= 0 {
			return fmt.Errorf("%w: fixed rate value must be positive", ErrInvalidInput)
		}
	case domain.RateTypePercentage:
		if rate.RateValue < 0 || rate.RateValue > 100 {
			return fmt.Errorf("%w: percentage rate value must be between 0 and 100", ErrInvalidInput)
		}
	case domain.RateTypeMultiplier:
		if rate.RateValue <= 0 {
			return fmt.Errorf("%w: multiplier rate value must be positive", ErrInvalidInput)
		}
	}

	if rate.MinStayNights < domain.MinSeasonalRateStayNights {
		return fmt.Errorf("%w: minStayNights must be at least %d", ErrInvalidInput, domain.MinSeasonalRateStayNights)
	}

	if rate.Priority < domain.MinSeasonalRatePriority || rate.Priority > domain.MaxSeasonalRatePriority {
		return fmt.Errorf("%w: priority must be between %d and %d",
			ErrInvalidInput, domain.MinSeasonalRatePriority, domain.MaxSeasonalRatePriority)
	}

	for _, d := range rate.ApplicableDaysOfWeek {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: applicableDaysOfWeek values must be between 0 and 6", ErrInvalidInput)
		}
	}

	return nil
}
