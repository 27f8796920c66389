package payment

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	"github.com/akimovv/VRM-BookingService/pkg/dbmetrics"
	"github.com/akimovv/VRM-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с верифицированными платежами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория платежей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает запись верифицированного платежа
func (r *Repository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payments").
		Columns(
			"booking_id",
			"amount",
			"method",
			"reference",
			"notes",
			"verified_at",
		).
		Values(
			p.BookingID,
			int64(p.Amount),
			p.Method,
			p.Reference,
			p.Notes,
			p.VerifiedAt,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time

	return p, nil
}

// SumVerifiedByBooking возвращает сумму всех верифицированных платежей по бронированию
func (r *Repository) SumVerifiedByBooking(ctx context.Context, bookingID int64) (domain.Money, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("payments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumVerifiedByBooking - build select query: %v", ErrBuildQuery, err)
	}

	var sum int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%w: SumVerifiedByBooking - scan sum: %v", ErrScanRow, err)
	}

	return domain.Money(sum), nil
}

// GetByBookingID получает все платежи по бронированию в порядке верификации
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.Payment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"amount",
		"method",
		"reference",
		"notes",
		"verified_at",
		"created_at",
	).
		From("payments").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("verified_at ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	payments := make([]*domain.Payment, 0)
	for rows.Next() {
		var p domain.Payment
		var amount int64
		var createdAt sql.NullTime

		err := rows.Scan(
			&p.ID,
			&p.BookingID,
			&amount,
			&p.Method,
			&p.Reference,
			&p.Notes,
			&p.VerifiedAt,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBookingID - scan row: %v", ErrScanRow, err)
		}

		p.Amount = domain.Money(amount)
		p.CreatedAt = createdAt.Time
		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - rows error: %v", ErrScanRow, err)
	}

	return payments, nil
}
