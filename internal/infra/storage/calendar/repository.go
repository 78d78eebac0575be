package calendar

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-PricingService/internal/domain"
	"github.com/m04kA/SMC-PricingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-PricingService/pkg/psqlbuilder"
)

// pgUniqueViolation код ошибки PostgreSQL для нарушения уникального индекса
const pgUniqueViolation = "23505"

// Repository репозиторий для работы со строками ценового календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория календарей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает строку календаря с пустыми ячейками.
// Нарушение уникального индекса (product_id, year, month) транслируется
// в ErrDuplicateCalendar
func (r *Repository) Create(ctx context.Context, cal *domain.MonthlyPriceCalendar) (*domain.MonthlyPriceCalendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	cal.Days = domain.NewEmptyDayCells()

	query, args, err := psqlbuilder.Insert("monthly_price_calendars").
		Columns(
			"product_id",
			"year",
			"month",
			"day_cells",
		).
		Values(
			cal.ProductID,
			cal.Year,
			string(cal.Month),
			pq.Array(cal.Days[:]),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&cal.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation {
			return nil, ErrDuplicateCalendar
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	cal.CreatedAt = createdAt.Time
	cal.UpdatedAt = updatedAt.Time

	return cal, nil
}

// GetByID получает строку календаря по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.MonthlyPriceCalendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"product_id",
		"year",
		"month",
		"day_cells",
		"created_at",
		"updated_at",
	).
		From("monthly_price_calendars").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	cal, err := scanCalendar(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCalendarNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return cal, nil
}

// ListByProduct получает все строки календаря продукта, упорядоченные
// по году и месяцу
func (r *Repository) ListByProduct(ctx context.Context, productID int64) ([]*domain.MonthlyPriceCalendar, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"product_id",
		"year",
		"month",
		"day_cells",
		"created_at",
		"updated_at",
	).
		From("monthly_price_calendars").
		Where(squirrel.Eq{"product_id": productID}).
		OrderBy("year ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProduct - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProduct - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	calendars := make([]*domain.MonthlyPriceCalendar, 0)
	for rows.Next() {
		cal, err := scanCalendar(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByProduct - scan row: %v", ErrScanRow, err)
		}
		calendars = append(calendars, cal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProduct - iterate rows: %v", ErrExecQuery, err)
	}

	return calendars, nil
}

// UpdateDays атомарно заменяет все 31 ячейку строки одним запросом.
// Частичных обновлений нет: либо вся строка записана, либо ничего
func (r *Repository) UpdateDays(ctx context.Context, id int64, days domain.DayCells) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("monthly_price_calendars").
		Set("day_cells", pq.Array(days[:])).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDays - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDays - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDays - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCalendarNotFound
	}

	return nil
}

// Delete жёстко удаляет строку календаря
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("monthly_price_calendars").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCalendarNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCalendar(row rowScanner) (*domain.MonthlyPriceCalendar, error) {
	var (
		cal       domain.MonthlyPriceCalendar
		month     string
		cells     pq.StringArray
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&cal.ID,
		&cal.ProductID,
		&cal.Year,
		&month,
		&cells,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	cal.Month = domain.Month(month)
	// Строка всегда отдается нормализованной до 31 ячейки
	cal.Days = domain.NormalizeDayCells(cells)
	cal.CreatedAt = createdAt.Time
	cal.UpdatedAt = updatedAt.Time

	return &cal, nil
}
