package slot

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

var slotColumns = []string{
	"id",
	"owner_id",
	"day",
	"label",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы со слотами доступности
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый слот со статусом available
// Нарушение уникальности (owner_id, day, label) возвращается как ErrDuplicateSlot,
// чтобы реконсилятор мог трактовать повторную вставку как no-op
func (r *Repository) Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns("owner_id", "day", "label", "status").
		Values(s.OwnerID, s.Day, s.Label, s.Status).
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
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// GetByID получает слот по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку: проверка статуса и его смена
	// не должны разделяться окном для конкурирующего запроса
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	s, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return s, nil
}

// ListByOwner получает все слоты мастера (включая принятые), отсортированные по дню и времени
func (r *Repository) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Slot, error) {
	return r.listByOwner(ctx, ownerID, nil)
}

// ListAvailableByOwner получает только открытые слоты мастера
func (r *Repository) ListAvailableByOwner(ctx context.Context, ownerID int64) ([]*domain.Slot, error) {
	status := domain.SlotAvailable
	return r.listByOwner(ctx, ownerID, &status)
}

func (r *Repository) listByOwner(ctx context.Context, ownerID int64, status *domain.SlotStatus) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("day ASC, label ASC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: listByOwner - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: listByOwner - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// ListByOwnerAndDay получает все слоты мастера на день недели
// Внутри транзакции блокирует строки (FOR UPDATE), чтобы реконсиляция дня
// не пересекалась с конкурентным бронированием
func (r *Repository) ListByOwnerAndDay(ctx context.Context, ownerID int64, day domain.Weekday) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"owner_id": ownerID, "day": day}).
		OrderBy("label ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwnerAndDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByOwnerAndDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanSlots(rows)
}

// DeleteAvailableByIDs удаляет слоты по ID, но только в статусе available
// Принятые слоты условие не пропускает: занятый слот не может быть
// удален переотправкой недели
func (r *Repository) DeleteAvailableByIDs(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slots").
		Where(squirrel.Eq{"id": ids, "status": domain.SlotAvailable}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAvailableByIDs - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAvailableByIDs - execute delete: %v", ErrExecQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteAvailableByIDs - get rows affected: %v", ErrExecQuery, err)
	}

	return deleted, nil
}

// MarkAccepted атомарно переводит слот из available в accepted
// Условный UPDATE сериализует проверку доступности и смену статуса:
// при конкурентных бронированиях одного слота ровно один запрос получает
// rowsAffected = 1, остальные - ErrSlotNotAvailable
func (r *Repository) MarkAccepted(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", domain.SlotAccepted).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": domain.SlotAvailable}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkAccepted - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkAccepted - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkAccepted - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrSlotNotAvailable
	}

	return nil
}

// scanSlot сканирует одну строку результата в слот
func scanSlot(row *sql.Row) (*domain.Slot, error) {
	var s domain.Slot
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.OwnerID,
		&s.Day,
		&s.Label,
		&s.Status,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// scanSlots сканирует результаты запроса в слайс слотов
func scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var s domain.Slot
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.OwnerID,
			&s.Day,
			&s.Label,
			&s.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}
