package bookinglog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/akimovv/VRM-BookingService/internal/domain"
	"github.com/akimovv/VRM-BookingService/pkg/dbmetrics"
	"github.com/akimovv/VRM-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий append-only журнала событий бронирований
// Записи никогда не изменяются и не удаляются
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Append добавляет запись в журнал
// Вызывается после успешного перехода состояния, в той же транзакции
func (r *Repository) Append(ctx context.Context, entry *domain.BookingLogEntry) (*domain.BookingLogEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_log").
		Columns(
			"booking_id",
			"actor_id",
			"event",
			"details",
		).
		Values(
			entry.BookingID,
			entry.ActorID,
			entry.Event,
			entry.Details,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %v", ErrExecQuery, err)
	}

	entry.CreatedAt = createdAt.Time

	return entry, nil
}

// GetByBookingID получает журнал событий бронирования в хронологическом порядке
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) ([]*domain.BookingLogEntry, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"booking_id",
		"actor_id",
		"event",
		"details",
		"created_at",
	).
		From("booking_log").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.BookingLogEntry, 0)
	for rows.Next() {
		var entry domain.BookingLogEntry
		var createdAt sql.NullTime

		err := rows.Scan(
			&entry.ID,
			&entry.BookingID,
			&entry.ActorID,
			&entry.Event,
			&entry.Details,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByBookingID - scan row: %v", ErrScanRow, err)
		}

		entry.CreatedAt = createdAt.Time
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - rows error: %v", ErrScanRow, err)
	}

	return entries, nil
}
