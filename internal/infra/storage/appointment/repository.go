package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/domain"
	"github.com/premoprojekt2024TM/Barber-sub000/pkg/dbmetrics"
	"github.com/premoprojekt2024TM/Barber-sub000/pkg/psqlbuilder"
)

// pqUniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const pqUniqueViolation = "23505"

var appointmentColumns = []string{
	"id",
	"client_id",
	"worker_id",
	"slot_id",
	"status",
	"notes",
	"client_name",
	"worker_name",
	"slot_day",
	"slot_label",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с записями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую запись
// Уникальное ограничение на slot_id - последняя линия защиты от двойного
// бронирования: нарушение возвращается как ErrSlotAlreadyBooked
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"client_id",
			"worker_id",
			"slot_id",
			"status",
			"notes",
			"client_name",
			"worker_name",
			"slot_day",
			"slot_label",
		).
		Values(
			a.ClientID,
			a.WorkerID,
			a.SlotID,
			a.Status,
			a.Notes,
			a.ClientName,
			a.WorkerName,
			a.SlotDay,
			a.SlotLabel,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrSlotAlreadyBooked
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return a, nil
}

// GetByID получает запись по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var a domain.Appointment
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.ClientID,
		&a.WorkerID,
		&a.SlotID,
		&a.Status,
		&a.Notes,
		&a.ClientName,
		&a.WorkerName,
		&a.SlotDay,
		&a.SlotLabel,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	a.CreatedAt = createdAt.Time
	a.UpdatedAt = updatedAt.Time

	return &a, nil
}

// ListByClientID получает записи клиента, новые первыми
func (r *Repository) ListByClientID(ctx context.Context, clientID int64) ([]*domain.Appointment, error) {
	return r.list(ctx, squirrel.Eq{"client_id": clientID})
}

// ListByWorkerID получает записи мастера, новые первыми
func (r *Repository) ListByWorkerID(ctx context.Context, workerID int64) ([]*domain.Appointment, error) {
	return r.list(ctx, squirrel.Eq{"worker_id": workerID})
}

func (r *Repository) list(ctx context.Context, where squirrel.Eq) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// UpdateStatus обновляет статус записи
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// scanAppointments сканирует результаты запроса в слайс записей
func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var a domain.Appointment
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&a.ID,
			&a.ClientID,
			&a.WorkerID,
			&a.SlotID,
			&a.Status,
			&a.Notes,
			&a.ClientName,
			&a.WorkerName,
			&a.SlotDay,
			&a.SlotLabel,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		a.CreatedAt = createdAt.Time
		a.UpdatedAt = updatedAt.Time

		appointments = append(appointments, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
