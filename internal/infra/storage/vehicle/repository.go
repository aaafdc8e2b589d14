package vehicle

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с автомобилями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория автомобилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert создает автомобиль или обновляет его атрибуты по госномеру.
// Цвет и марка обновляются при каждом повторном въезде.
// Если в контексте передана активная транзакция, использует её.
func (r *Repository) Upsert(ctx context.Context, v *domain.Vehicle) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("vehicles").
		Columns("license_plate", "color", "brand").
		Values(v.LicensePlate, v.Color, v.Brand).
		Suffix(`ON CONFLICT (license_plate) DO UPDATE
			SET color = EXCLUDED.color, brand = EXCLUDED.brand, updated_at = now()
			RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return v, nil
}

// GetByPlate получает автомобиль по нормализованному госномеру
func (r *Repository) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"license_plate",
		"color",
		"brand",
		"created_at",
		"updated_at",
	).
		From("vehicles").
		Where(squirrel.Eq{"license_plate": plate}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlate - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Vehicle
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.LicensePlate,
		&v.Color,
		&v.Brand,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPlate - scan vehicle: %v", ErrScanRow, err)
	}

	v.CreatedAt = createdAt.Time
	v.UpdatedAt = updatedAt.Time

	return &v, nil
}
