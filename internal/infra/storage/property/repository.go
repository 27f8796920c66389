package property

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	"github.com/akimovv/VRM-BookingService/pkg/dbmetrics"
	"github.com/akimovv/VRM-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с объектами размещения
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория объектов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает объект по ID вместе с тарифными атрибутами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Property, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"name",
		"base_rate",
		"weekend_premium_percent",
		"cleaning_fee",
		"extra_bed_rate",
		"capacity",
		"capacity_max",
		"min_stay_weekday",
		"min_stay_weekend",
		"min_stay_peak",
		"is_active",
		"created_at",
		"updated_at",
	).
		From("properties").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var property domain.Property
	var baseRate, cleaningFee, extraBedRate int64
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&property.ID,
		&property.Name,
		&baseRate,
		&property.WeekendPremiumPercent,
		&cleaningFee,
		&extraBedRate,
		&property.Capacity,
		&property.CapacityMax,
		&property.MinStayWeekday,
		&property.MinStayWeekend,
		&property.MinStayPeak,
		&property.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPropertyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan property: %v", ErrScanRow, err)
	}

	property.BaseRate = domain.Money(baseRate)
	property.CleaningFee = domain.Money(cleaningFee)
	property.ExtraBedRate = domain.Money(extraBedRate)
	property.CreatedAt = createdAt.Time
	property.UpdatedAt = updatedAt.Time

	return &property, nil
}
