package exception

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/ytopal/Barbershop-BookingService/internal/domain"
	"github.com/ytopal/Barbershop-BookingService/pkg/psqlbuilder"
	"github.com/ytopal/Barbershop-BookingService/pkg/txmanager"
	"github.com/ytopal/Barbershop-BookingService/pkg/types"
)

var exceptionColumns = []string{
	"id",
	"exception_date",
	"exception_type",
	"start_time",
	"end_time",
	"note",
	"created_at",
}

// Repository репозиторий исключений по датам
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория исключений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое исключение
func (r *Repository) Create(ctx context.Context, exc *domain.DateException) (*domain.DateException, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("availability_exceptions").
		Columns("exception_date", "exception_type", "start_time", "end_time", "note").
		Values(exc.Date, exc.Type, exc.StartTime, exc.EndTime, exc.Note).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&exc.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	exc.CreatedAt = createdAt.Time

	return exc, nil
}

// ListByDateRange получает исключения за период (границы включительно),
// упорядоченные по дате и порядку создания
func (r *Repository) ListByDateRange(ctx context.Context, filter domain.ExceptionsFilter) ([]domain.DateException, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(exceptionColumns...).
		From("availability_exceptions").
		Where(squirrel.GtOrEq{"exception_date": filter.From}).
		Where(squirrel.LtOrEq{"exception_date": filter.To}).
		OrderBy("exception_date ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	exceptions := make([]domain.DateException, 0)

	for rows.Next() {
		var exc domain.DateException
		var startTime, endTime sql.NullString
		var createdAt sql.NullTime

		err := rows.Scan(
			&exc.ID,
			&exc.Date,
			&exc.Type,
			&startTime,
			&endTime,
			&exc.Note,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: ListByDateRange - scan row: %v", ErrScanRow, err)
		}

		if exc.StartTime, err = parseNullTime(startTime); err != nil {
			return nil, fmt.Errorf("%w: ListByDateRange - parse start_time: %v", ErrScanRow, err)
		}
		if exc.EndTime, err = parseNullTime(endTime); err != nil {
			return nil, fmt.Errorf("%w: ListByDateRange - parse end_time: %v", ErrScanRow, err)
		}

		exc.CreatedAt = createdAt.Time
		exceptions = append(exceptions, exc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByDateRange - rows error: %v", ErrScanRow, err)
	}

	return exceptions, nil
}

// parseNullTime конвертирует NULLABLE значение TIME колонки в *TimeString
// PostgreSQL возвращает время как "HH:MM:SS"
func parseNullTime(v sql.NullString) (*types.TimeString, error) {
	if !v.Valid {
		return nil, nil
	}

	s := v.String
	if len(s) > 5 {
		s = s[:5]
	}

	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// Delete удаляет исключение
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("availability_exceptions").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrExceptionNotFound
	}

	return nil
}
