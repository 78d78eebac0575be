package band

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

// Repository репозиторий для работы с тарифными бандами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бандов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый банд. Таблица цен хранится массивом из 60 значений:
// первые 30 заданы оператором, хвост - снимок экстраполяции, вычисленный
// до вызова репозитория.
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, band *domain.GlobalBand) (*domain.GlobalBand, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("global_bands").
		Columns(
			"product_id",
			"band_name",
			"increment_value",
			"day_prices",
		).
		Values(
			band.ProductID,
			string(band.Name),
			band.IncrementValue,
			pq.Array(band.DayPrices[:]),
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&band.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	band.CreatedAt = createdAt.Time
	band.UpdatedAt = updatedAt.Time

	return band, nil
}

// GetByID получает банд по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.GlobalBand, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"product_id",
		"band_name",
		"increment_value",
		"day_prices",
		"created_at",
		"updated_at",
	).
		From("global_bands").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	band, err := scanBand(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBandNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan row: %v", ErrScanRow, err)
	}

	return band, nil
}

// ListByProduct получает все банды продукта в порядке создания
func (r *Repository) ListByProduct(ctx context.Context, productID int64) ([]*domain.GlobalBand, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"product_id",
		"band_name",
		"increment_value",
		"day_prices",
		"created_at",
		"updated_at",
	).
		From("global_bands").
		Where(squirrel.Eq{"product_id": productID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProduct - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProduct - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bands := make([]*domain.GlobalBand, 0)
	for rows.Next() {
		band, err := scanBand(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByProduct - scan row: %v", ErrScanRow, err)
		}
		bands = append(bands, band)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProduct - iterate rows: %v", ErrExecQuery, err)
	}

	return bands, nil
}

// Update полностью перезаписывает банд: имя, инкремент и всю таблицу цен.
// Ссылающиеся календари не затрагиваются, даже если имя изменилось
func (r *Repository) Update(ctx context.Context, band *domain.GlobalBand) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("global_bands").
		Set("band_name", string(band.Name)).
		Set("increment_value", band.IncrementValue).
		Set("day_prices", pq.Array(band.DayPrices[:])).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": band.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBandNotFound
	}

	return nil
}

// Delete жёстко удаляет банд. Каскада в календари нет
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("global_bands").
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
		return ErrBandNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBand(row rowScanner) (*domain.GlobalBand, error) {
	var (
		band      domain.GlobalBand
		name      string
		prices    pq.Float64Array
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&band.ID,
		&band.ProductID,
		&name,
		&band.IncrementValue,
		&prices,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	band.Name = domain.BandName(name)
	copy(band.DayPrices[:], prices)
	band.CreatedAt = createdAt.Time
	band.UpdatedAt = updatedAt.Time

	return &band, nil
}
