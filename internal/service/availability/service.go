package availability

import (
	"context"
	"errors"
	"fmt"

	userClient "github.com/premoprojekt2024TM/Barber-sub000/internal/integrations/userservice"
	"github.com/premoprojekt2024TM/Barber-sub000/internal/service/availability/models"
)

// Service сервис чтения доступности мастеров
// Только чтение, без побочных эффектов
type Service struct {
	slotRepo   SlotRepository
	userClient UserServiceClient
	logger     Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	slotRepo SlotRepository,
	userClient UserServiceClient,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:   slotRepo,
		userClient: userClient,
		logger:     logger,
	}
}

// ListByWorker возвращает открытые слоты мастера, сгруппированные по дням
// Используется клиентами для выбора времени и редактором для посева черновика
func (s *Service) ListByWorker(ctx context.Context, workerID int64) (*models.AvailabilityResponse, error) {
	s.logger.Info("ListByWorker: fetching availability for worker=%d", workerID)

	if err := s.checkWorker(ctx, workerID); err != nil {
		return nil, err
	}

	slots, err := s.slotRepo.ListAvailableByOwner(ctx, workerID)
	if err != nil {
		s.logger.Error("ListByWorker: repository error for worker=%d: %v", workerID, err)
		return nil, fmt.Errorf("%w: ListByWorker - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByWorker: worker=%d has %d available slots", workerID, len(slots))
	return models.FromDomainAvailability(workerID, slots), nil
}

// GetOwnWeek возвращает полную неделю мастера, включая принятые слоты
// Принятые слоты нужны редактору черновика: они отображаются в done-корзине
func (s *Service) GetOwnWeek(ctx context.Context, ownerID int64) (*models.WeekResponse, error) {
	s.logger.Info("GetOwnWeek: fetching week for worker=%d", ownerID)

	if err := s.checkWorker(ctx, ownerID); err != nil {
		return nil, err
	}

	slots, err := s.slotRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("GetOwnWeek: repository error for worker=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: GetOwnWeek - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetOwnWeek: worker=%d has %d slots", ownerID, len(slots))
	return models.FromDomainWeek(ownerID, slots), nil
}

// checkWorker проверяет, что пользователь существует и является мастером
func (s *Service) checkWorker(ctx context.Context, workerID int64) error {
	user, err := s.userClient.GetUser(ctx, workerID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			s.logger.Warn("checkWorker: worker id=%d not found", workerID)
			return ErrWorkerNotFound
		}
		s.logger.Error("checkWorker: failed to get user id=%d: %v", workerID, err)
		return fmt.Errorf("%w: checkWorker - failed to get user: %v", ErrInternal, err)
	}

	if !user.IsWorker() {
		s.logger.Warn("checkWorker: user id=%d has role=%s, worker required", workerID, user.Role)
		return ErrNotWorker
	}

	return nil
}
