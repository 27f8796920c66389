package seasonalrate

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	"github.com/akimovv/VRM-BookingService/pkg/dbmetrics"
	"github.com/akimovv/VRM-BookingService/pkg/psqlbuilder"
)

// rateColumns полный список колонок таблицы seasonal_rates в порядке сканирования
var rateColumns = []string{
	"id",
	"property_id",
	"name",
	"start_date",
	"end_date",
	"rate_type",
	"rate_value",
	"min_stay_nights",
	"weekends_only",
	"applicable_days_of_week",
	"priority",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с сезонными тарифами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сезонных тарифов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый сезонный тариф
func (r *Repository) Create(ctx context.Context, rate *domain.SeasonalRate) (*domain.SeasonalRate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("seasonal_rates").
		Columns(
			"property_id",
			"name",
			"start_date",
			"end_date",
			"rate_type",
			"rate_value",
			"min_stay_nights",
			"weekends_only",
			"applicable_days_of_week",
			"priority",
			"is_active",
		).
		Values(
			rate.PropertyID,
			rate.Name,
			rate.StartDate,
			rate.EndDate,
			rate.RateType,
			rate.RateValue,
			rate.MinStayNights,
			rate.AppliesToWeekendsOnly,
			pq.Array(rate.ApplicableDaysOfWeek),
			rate.Priority,
			rate.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rate.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rate.CreatedAt = createdAt.Time
	rate.UpdatedAt = updatedAt.Time

	return rate, nil
}

// GetByID получает сезонный тариф по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.SeasonalRate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(rateColumns...).
		From("seasonal_rates").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rate, err := r.scanRate(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rate: %v", ErrScanRow, err)
	}

	return rate, nil
}

// GetActiveByProperty получает активные сезонные тарифы объекта
// Порядок выдачи закрепляет политику разрешения: priority DESC, start_date ASC
func (r *Repository) GetActiveByProperty(ctx context.Context, propertyID int64) ([]*domain.SeasonalRate, error) {
	return r.getByProperty(ctx, propertyID, true)
}

// GetAllByProperty получает все сезонные тарифы объекта, включая деактивированные
func (r *Repository) GetAllByProperty(ctx context.Context, propertyID int64) ([]*domain.SeasonalRate, error) {
	return r.getByProperty(ctx, propertyID, false)
}

func (r *Repository) getByProperty(ctx context.Context, propertyID int64, activeOnly bool) ([]*domain.SeasonalRate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rateColumns...).
		From("seasonal_rates").
		Where(squirrel.Eq{"property_id": propertyID}).
		OrderBy("priority DESC", "start_date ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getByProperty - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getByProperty - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rates := make([]*domain.SeasonalRate, 0)
	for rows.Next() {
		rate, err := r.scanRate(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: getByProperty - scan row: %v", ErrScanRow, err)
		}
		rates = append(rates, rate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getByProperty - rows error: %v", ErrScanRow, err)
	}

	return rates, nil
}

// Deactivate деактивирует сезонный тариф
// Физическое удаление не поддерживается: исторические бронирования
// ссылаются на название применённого тарифа
func (r *Repository) Deactivate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("seasonal_rates").
		Set("is_active", false).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Deactivate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Deactivate - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Deactivate - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRateNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanRate сканирует одну строку результата в сезонный тариф
func (r *Repository) scanRate(row rowScanner) (*domain.SeasonalRate, error) {
	var rate domain.SeasonalRate
	var days pq.Int64Array
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rate.ID,
		&rate.PropertyID,
		&rate.Name,
		&rate.StartDate,
		&rate.EndDate,
		&rate.RateType,
		&rate.RateValue,
		&rate.MinStayNights,
		&rate.AppliesToWeekendsOnly,
		&days,
		&rate.Priority,
		&rate.IsActive,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rate.ApplicableDaysOfWeek = make([]int, 0, len(days))
	for _, d := range days {
		rate.ApplicableDaysOfWeek = append(rate.ApplicableDaysOfWeek, int(d))
	}
	rate.CreatedAt = createdAt.Time
	rate.UpdatedAt = updatedAt.Time

	return &rate, nil
}
