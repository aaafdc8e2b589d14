package spot

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

// Repository репозиторий для работы с парковочными местами
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория мест
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// FindFreeByType находит свободное место запрошенного типа.
// Политика выбора детерминирована: минимальный этаж, затем минимальный
// номер места. Строка блокируется (FOR UPDATE), поэтому вызывать нужно
// внутри транзакции - конкурентный въезд не получит то же место.
func (r *Repository) FindFreeByType(ctx context.Context, spotType domain.SpotType) (*domain.ParkingSpot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"floor_number",
		"spot_number",
		"spot_type",
		"is_occupied",
	).
		From("parking_spots").
		Where(squirrel.Eq{"spot_type": spotType, "is_occupied": false}).
		OrderBy("floor_number ASC", "spot_number ASC").
		Limit(1).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindFreeByType - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.ParkingSpot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.FloorNumber,
		&s.SpotNumber,
		&s.SpotType,
		&s.IsOccupied,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoFreeSpot
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindFreeByType - scan spot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// GetByID получает место по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.ParkingSpot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"floor_number",
		"spot_number",
		"spot_type",
		"is_occupied",
	).
		From("parking_spots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.ParkingSpot
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.FloorNumber,
		&s.SpotNumber,
		&s.SpotType,
		&s.IsOccupied,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSpotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan spot: %v", ErrScanRow, err)
	}

	return &s, nil
}

// SetOccupied переключает флаг занятости места.
// Условие WHERE требует противоположного текущего состояния, так что
// двойное занятие (или двойное освобождение) одного места невозможно.
func (r *Repository) SetOccupied(ctx context.Context, id int64, occupied bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_spots").
		Set("is_occupied", occupied).
		Where(squirrel.Eq{"id": id, "is_occupied": !occupied}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetOccupied - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetOccupied - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetOccupied - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: spot id=%d, occupied=%t", ErrSpotStateConflict, id, occupied)
	}

	return nil
}

// CountByFloor возвращает агрегированные счетчики занятости по этажам,
// отсортированные по номеру этажа
func (r *Repository) CountByFloor(ctx context.Context) ([]domain.FloorOccupancy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"floor_number",
		"COUNT(*) AS total",
		"COUNT(*) FILTER (WHERE is_occupied) AS occupied",
	).
		From("parking_spots").
		GroupBy("floor_number").
		OrderBy("floor_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByFloor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByFloor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	floors := make([]domain.FloorOccupancy, 0)
	for rows.Next() {
		var f domain.FloorOccupancy
		if err := rows.Scan(&f.FloorNumber, &f.Total, &f.Occupied); err != nil {
			return nil, fmt.Errorf("%w: CountByFloor - scan row: %v", ErrScanRow, err)
		}
		floors = append(floors, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByFloor - rows error: %v", ErrExecQuery, err)
	}

	return floors, nil
}

// CountAll возвращает общее число мест на парковке
func (r *Repository) CountAll(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("parking_spots").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountAll - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountAll - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// CreateFloor создает запись этажа
func (r *Repository) CreateFloor(ctx context.Context, floor *domain.Floor) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("floors").
		Columns("floor_number", "total_spots").
		Values(floor.FloorNumber, floor.TotalSpots).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateFloor - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateFloor - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// CreateBulk создает места одним запросом (используется провижинингом)
func (r *Repository) CreateBulk(ctx context.Context, spots []domain.ParkingSpot) error {
	if len(spots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("parking_spots").
		Columns("floor_number", "spot_number", "spot_type", "is_occupied")
	for _, s := range spots {
		insert = insert.Values(s.FloorNumber, s.SpotNumber, s.SpotType, s.IsOccupied)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBulk - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateBulk - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
