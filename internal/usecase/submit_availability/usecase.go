package submit_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/domain"
	slotRepo "github.com/premoprojekt2024TM/Barber-sub000/internal/infra/storage/slot"
	userClient "github.com/premoprojekt2024TM/Barber-sub000/internal/integrations/userservice"
	"github.com/premoprojekt2024TM/Barber-sub000/pkg/types"
)

// UseCase use case реконсиляции недели доступности мастера
// Приводит сохраненные слоты к отправленной неделе минимальным набором
// изменений, не трогая слоты, уже занятые записями
type UseCase struct {
	slotRepo   SlotRepository
	userClient UserServiceClient
	txManager  TransactionManager
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:   slotRepo,
		userClient: userClient,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute выполняет реконсиляцию недели
// Каждый день применяется в собственной транзакции: ошибка на дне N оставляет
// дни 1..N-1 примененными (ErrReconcile, состояние недели неопределенное)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitAvailability: worker=%d, days=%d", req.WorkerID, len(req.Week))

	// 1. Валидация недели целиком
	week, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("SubmitAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что пользователь существует и является мастером
	user, err := uc.userClient.GetUser(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("SubmitAvailability: worker id=%d not found", req.WorkerID)
			return nil, ErrWorkerNotFound
		}
		uc.logger.Error("SubmitAvailability: failed to get worker id=%d: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: failed to get worker: %v", ErrInternal, err)
	}

	if !user.IsWorker() {
		uc.logger.Warn("SubmitAvailability: user id=%d has role=%s, worker required", req.WorkerID, user.Role)
		return nil, ErrNotWorker
	}

	// 3. Реконсилируем каждый день в отдельной транзакции
	// Дни обходятся в фиксированном порядке, хотя корректность от порядка не зависит
	resp := &Response{WorkerID: req.WorkerID}

	for _, day := range domain.Weekdays {
		report, err := uc.reconcileDay(ctx, req.WorkerID, day, week[day])
		if err != nil {
			uc.logger.Error("SubmitAvailability: worker=%d day=%s failed after %d applied days: %v",
				req.WorkerID, day, len(resp.Days), err)
			return nil, fmt.Errorf("%w: day %s: %v", ErrReconcile, day, err)
		}

		resp.Days = append(resp.Days, *report)
		resp.Created += report.Created
		resp.Deleted += report.Deleted
		resp.Unchanged += report.Unchanged
	}

	uc.logger.Info("SubmitAvailability: worker=%d reconciled, created=%d deleted=%d unchanged=%d",
		req.WorkerID, resp.Created, resp.Deleted, resp.Unchanged)

	return resp, nil
}

// reconcileDay приводит слоты одного дня к отправленному списку меток
// Выполняется внутри транзакции с блокировкой строк дня (FOR UPDATE)
func (uc *UseCase) reconcileDay(
	ctx context.Context,
	workerID int64,
	day domain.Weekday,
	submitted []types.TimeString,
) (*DayReport, error) {
	report := &DayReport{Day: day}

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		stored, err := uc.slotRepo.ListByOwnerAndDay(txCtx, workerID, day)
		if err != nil {
			return fmt.Errorf("list stored slots: %v", err)
		}

		submittedSet := make(map[types.TimeString]struct{}, len(submitted))
		for _, label := range submitted {
			submittedSet[label] = struct{}{}
		}

		// Удаляем открытые слоты, метки которых отсутствуют в отправке
		// Принятые слоты не удаляются и не изменяются независимо от содержимого
		// отправки: занятые обязательства не затираются переотправкой недели
		storedByLabel := make(map[types.TimeString]*domain.Slot, len(stored))
		toDelete := make([]int64, 0)

		for _, s := range stored {
			storedByLabel[s.Label] = s

			if _, keep := submittedSet[s.Label]; !keep && s.IsAvailable() {
				toDelete = append(toDelete, s.ID)
			}
		}

		deleted, err := uc.slotRepo.DeleteAvailableByIDs(txCtx, toDelete)
		if err != nil {
			return fmt.Errorf("delete stale slots: %v", err)
		}
		report.Deleted = int(deleted)

		// Вставляем отправленные метки без сохраненной строки,
		// совпадающие метки не трогаем (повторная отправка - ноль записей)
		for _, label := range submitted {
			if _, exists := storedByLabel[label]; exists {
				report.Unchanged++
				continue
			}

			_, err := uc.slotRepo.Create(txCtx, &domain.Slot{
				OwnerID: workerID,
				Day:     day,
				Label:   label,
				Status:  domain.SlotAvailable,
			})
			if err != nil {
				// Конкурентная вставка той же метки - считаем слот существующим
				if errors.Is(err, slotRepo.ErrDuplicateSlot) {
					report.Unchanged++
					continue
				}
				return fmt.Errorf("create slot %s: %v", label, err)
			}

			report.Created++
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return report, nil
}
