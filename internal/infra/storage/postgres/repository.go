package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/LaMesa-ReservationService/internal/domain"
	"github.com/m04kA/LaMesa-ReservationService/internal/infra/storage"
	"github.com/m04kA/LaMesa-ReservationService/pkg/psqlbuilder"
)

// Колонки таблицы reservas. Имена испанские - схема унаследована
// от исторических данных.
var reservaColumns = []string{
	"id",
	"nombre",
	"telefono",
	"email",
	"personas",
	"fecha",
	"hora",
	"estado",
	"created_at",
}

// Repository репозиторий броней поверх PostgreSQL
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новую бронь и возвращает её с присвоенным id
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Insert("reservas").
		Columns("nombre", "telefono", "email", "personas", "fecha", "hora", "estado").
		Values(res.Name, res.Phone, res.Email, res.PartySize, res.Date, res.Time, res.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", storage.ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&res.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", storage.ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	return res, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservaColumns...).
		From("reservas").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", storage.ErrBuildQuery, err)
	}

	res, err := scanReserva(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", storage.ErrScanRow, err)
	}

	return res, nil
}

// ListAll возвращает все брони, отсортированные по дате и времени
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservaColumns...).
		From("reservas").
		OrderBy("fecha ASC", "hora ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", storage.ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservas(rows)
}

// ListConfirmedForDate возвращает подтвержденные брони на указанную дату.
// Только они учитываются при подсчете занятой вместимости.
func (r *Repository) ListConfirmedForDate(ctx context.Context, date time.Time) ([]*domain.Reservation, error) {
	query, args, err := psqlbuilder.Select(reservaColumns...).
		From("reservas").
		Where(squirrel.Eq{"fecha": date, "estado": domain.StatusConfirmed}).
		OrderBy("hora ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedForDate - build select query: %v", storage.ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListConfirmedForDate - execute query: %v", storage.ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservas(rows)
}

// UpdateStatus обновляет статус брони
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	query, args, err := psqlbuilder.Update("reservas").
		Set("estado", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", storage.ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", storage.ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", storage.ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return storage.ErrReservationNotFound
	}

	return nil
}

// Delete физически удаляет бронь и возвращает удаленный снимок.
// Отказ и отмена не оставляют строки-надгробия.
func (r *Repository) Delete(ctx context.Context, id int64) (*domain.Reservation, error) {
	query, args, err := psqlbuilder.Delete("reservas").
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(reservaColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - build delete query: %v", storage.ErrBuildQuery, err)
	}

	res, err := scanReserva(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - scan deleted reservation: %v", storage.ErrScanRow, err)
	}

	return res, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReserva(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Name,
		&res.Phone,
		&res.Email,
		&res.PartySize,
		&res.Date,
		&res.Time,
		&res.Status,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	return &res, nil
}

func scanReservas(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservas := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReserva(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservas - scan row: %v", storage.ErrScanRow, err)
		}
		reservas = append(reservas, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservas - rows error: %v", storage.ErrScanRow, err)
	}

	return reservas, nil
}
