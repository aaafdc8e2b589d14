package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ParkingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с парковочными сессиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает открытую сессию.
// Вызывается только внутри сериализуемой транзакции въезда вместе с
// occupancy-обновлением места - частичное состояние снаружи не видно.
func (r *Repository) Create(ctx context.Context, s *domain.ParkingSession) (*domain.ParkingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("parking_sessions").
		Columns(
			"vehicle_id",
			"spot_id",
			"entry_time",
			"hourly_rate",
			"status",
		).
		Values(
			s.VehicleID,
			s.SpotID,
			s.EntryTime,
			s.HourlyRate,
			s.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetOpenByPlate находит открытую сессию по госномеру.
// У автомобиля может быть не более одной открытой сессии, поэтому
// выборка без LIMIT-неоднозначности.
func (r *Repository) GetOpenByPlate(ctx context.Context, plate string) (*domain.ParkingSession, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"s.id",
		"s.vehicle_id",
		"s.spot_id",
		"s.entry_time",
		"s.exit_time",
		"s.hourly_rate",
		"s.amount_paid",
		"s.status",
		"s.created_at",
		"s.updated_at",
	).
		From("parking_sessions s").
		Join("vehicles v ON v.id = s.vehicle_id").
		Where(squirrel.Eq{"v.license_plate": plate, "s.status": domain.StatusOpen}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOpenByPlate - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSession(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetOpenByPlate - scan session: %v", ErrScanRow, err)
	}

	return s, nil
}

// Close закрывает сессию: exit_time, amount_paid и статус выставляются
// одним UPDATE. Условие status='open' гарантирует, что сессия
// закрывается ровно один раз.
func (r *Repository) Close(ctx context.Context, id int64, exitTime time.Time, amountPaid float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_sessions").
		Set("exit_time", exitTime).
		Set("amount_paid", amountPaid).
		Set("status", domain.StatusClosed).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "status": domain.StatusOpen}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Close - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Close - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Close - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: session id=%d", ErrSessionAlreadyClosed, id)
	}

	return nil
}

// List возвращает сессии вместе с автомобилем и местом, с гибкой
// фильтрацией по цвету, марке, этажу, статусу и нижней границе
// entry_time. Сортировка: entry_time по возрастанию (стабильный
// tie-break по id).
func (r *Repository) List(ctx context.Context, filter domain.SessionListFilter) ([]domain.SessionRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"s.id",
		"s.vehicle_id",
		"s.spot_id",
		"s.entry_time",
		"s.exit_time",
		"s.hourly_rate",
		"s.amount_paid",
		"s.status",
		"s.created_at",
		"s.updated_at",
		"v.id",
		"v.license_plate",
		"v.color",
		"v.brand",
		"p.id",
		"p.floor_number",
		"p.spot_number",
		"p.spot_type",
		"p.is_occupied",
	).
		From("parking_sessions s").
		Join("vehicles v ON v.id = s.vehicle_id").
		Join("parking_spots p ON p.id = s.spot_id").
		OrderBy("s.entry_time ASC", "s.id ASC")

	// Опциональные фильтры (контракт ассистента)
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"s.status": *filter.Status})
	}
	if filter.Color != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("LOWER(v.color) = LOWER(?)", *filter.Color))
	}
	if filter.Brand != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr("LOWER(v.brand) = LOWER(?)", *filter.Brand))
	}
	if filter.Floor != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"p.floor_number": *filter.Floor})
	}
	if filter.EnteredAfter != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"s.entry_time": *filter.EnteredAfter})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records := make([]domain.SessionRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan record: %v", ErrScanRow, err)
		}
		records = append(records, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrExecQuery, err)
	}

	return records, nil
}

// CountOpen возвращает число открытых сессий (текущая занятость)
func (r *Repository) CountOpen(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("parking_sessions").
		Where(squirrel.Eq{"status": domain.StatusOpen}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOpen - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOpen - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSession(row rowScanner) (*domain.ParkingSession, error) {
	var s domain.ParkingSession
	var exitTime, createdAt, updatedAt sql.NullTime
	var amountPaid sql.NullFloat64

	err := row.Scan(
		&s.ID,
		&s.VehicleID,
		&s.SpotID,
		&s.EntryTime,
		&exitTime,
		&s.HourlyRate,
		&amountPaid,
		&s.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if exitTime.Valid {
		t := exitTime.Time
		s.ExitTime = &t
	}
	if amountPaid.Valid {
		a := amountPaid.Float64
		s.AmountPaid = &a
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

func scanRecord(rows *sql.Rows) (*domain.SessionRecord, error) {
	var rec domain.SessionRecord
	var exitTime, createdAt, updatedAt sql.NullTime
	var amountPaid sql.NullFloat64

	err := rows.Scan(
		&rec.Session.ID,
		&rec.Session.VehicleID,
		&rec.Session.SpotID,
		&rec.Session.EntryTime,
		&exitTime,
		&rec.Session.HourlyRate,
		&amountPaid,
		&rec.Session.Status,
		&createdAt,
		&updatedAt,
		&rec.Vehicle.ID,
		&rec.Vehicle.LicensePlate,
		&rec.Vehicle.Color,
		&rec.Vehicle.Brand,
		&rec.Spot.ID,
		&rec.Spot.FloorNumber,
		&rec.Spot.SpotNumber,
		&rec.Spot.SpotType,
		&rec.Spot.IsOccupied,
	)
	if err != nil {
		return nil, err
	}

	if exitTime.Valid {
		t := exitTime.Time
		rec.Session.ExitTime = &t
	}
	if amountPaid.Valid {
		a := amountPaid.Float64
		rec.Session.AmountPaid = &a
	}
	rec.Session.CreatedAt = createdAt.Time
	rec.Session.UpdatedAt = updatedAt.Time

	return &rec, nil
}
