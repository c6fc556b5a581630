package reserve_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/domain"
	slotRepo "github.com/premoprojekt2024TM/Barber-sub000/internal/infra/storage/slot"
	userClient "github.com/premoprojekt2024TM/Barber-sub000/internal/integrations/userservice"
)

// UseCase use case бронирования слота клиентом
// Перевод слота в accepted и создание записи выполняются в одной транзакции:
// либо происходят оба изменения, либо ни одного
type UseCase struct {
	slotRepo        SlotRepository
	appointmentRepo AppointmentRepository
	userClient      UserServiceClient
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	appointmentRepo AppointmentRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:        slotRepo,
		appointmentRepo: appointmentRepo,
		userClient:      userClient,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case бронирования слота
// При конкурентных бронированиях одного слота успешным будет ровно один запрос,
// остальные получают ErrSlotUnavailable
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReserveSlot: client=%d, worker=%d, slot=%d", req.ClientID, req.WorkerID, req.SlotID)

	// 1. Валидация входных данных (включая запрет самозаписи)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ReserveSlot: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что мастер существует и имеет роль worker
	worker, err := uc.userClient.GetUser(ctx, req.WorkerID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("ReserveSlot: worker id=%d not found", req.WorkerID)
			return nil, ErrWorkerNotFound
		}
		uc.logger.Error("ReserveSlot: failed to get worker id=%d: %v", req.WorkerID, err)
		return nil, fmt.Errorf("%w: failed to get worker: %v", ErrInternal, err)
	}

	if !worker.IsWorker() {
		uc.logger.Warn("ReserveSlot: user id=%d has role=%s, worker required", req.WorkerID, worker.Role)
		return nil, ErrWorkerNotFound
	}

	// 3. Получаем клиента для денормализации имени
	client, err := uc.userClient.GetUser(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			uc.logger.Warn("ReserveSlot: client id=%d not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		uc.logger.Error("ReserveSlot: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 4. Бронируем слот в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем слот с блокировкой строки (FOR UPDATE внутри транзакции)
		s, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 4.2. Слот должен принадлежать указанному мастеру
		if s.OwnerID != req.WorkerID {
			uc.logger.Warn("ReserveSlot: slot id=%d belongs to worker=%d, not worker=%d",
				req.SlotID, s.OwnerID, req.WorkerID)
			return ErrSlotNotFound
		}

		// 4.3. Атомарно переводим слот из available в accepted
		// Условный UPDATE проверяет статус и меняет его одним запросом:
		// проигравший гонку запрос получает rowsAffected = 0
		if err := uc.slotRepo.MarkAccepted(txCtx, req.SlotID); err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotAvailable) {
				uc.logger.Warn("ReserveSlot: slot id=%d already taken", req.SlotID)
				return ErrSlotUnavailable
			}
			return fmt.Errorf("%w: failed to accept slot: %v", ErrInternal, err)
		}

		// 4.4. Создаем запись в той же транзакции
		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			ClientID:   req.ClientID,
			WorkerID:   req.WorkerID,
			SlotID:     req.SlotID,
			Status:     domain.StatusConfirmed,
			Notes:      req.Notes,
			ClientName: client.DisplayName,
			WorkerName: worker.DisplayName,
			SlotDay:    s.Day,
			SlotLabel:  s.Label,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReserveSlot: successfully created appointment id=%d for slot=%d", result.ID, req.SlotID)

	return &Response{
		ID:         result.ID,
		ClientID:   result.ClientID,
		WorkerID:   result.WorkerID,
		SlotID:     result.SlotID,
		Status:     string(result.Status),
		Notes:      result.Notes,
		ClientName: result.ClientName,
		WorkerName: result.WorkerName,
		SlotDay:    result.SlotDay,
		SlotLabel:  result.SlotLabel,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}
