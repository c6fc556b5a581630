package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/domain"
	appointmentRepo "github.com/premoprojekt2024TM/Barber-sub000/internal/infra/storage/appointment"
	userClient "github.com/premoprojekt2024TM/Barber-sub000/internal/integrations/userservice"
	"github.com/premoprojekt2024TM/Barber-sub000/internal/service/appointments/models"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	userClient      UserServiceClient
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	userClient UserServiceClient,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		userClient:      userClient,
		logger:          logger,
	}
}

// GetMine возвращает записи вызывающего пользователя в зависимости от роли:
// клиент видит свои бронирования, мастер - записи к себе
// Пустой список - валидный ответ, а не ошибка
func (s *Service) GetMine(ctx context.Context, userID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetMine: fetching appointments for user=%d", userID)

	user, err := s.userClient.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, userClient.ErrUserNotFound) {
			s.logger.Warn("GetMine: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetMine: failed to get user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetMine - failed to get user: %v", ErrInternal, err)
	}

	var list []*domain.Appointment
	if user.IsWorker() {
		list, err = s.appointmentRepo.ListByWorkerID(ctx, userID)
	} else {
		list, err = s.appointmentRepo.ListByClientID(ctx, userID)
	}

	if err != nil {
		s.logger.Error("GetMine: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetMine - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetMine: user=%d role=%s has %d appointments", userID, user.Role, len(list))
	return models.FromDomainAppointmentList(list), nil
}

// GetForClient возвращает записи клиента
func (s *Service) GetForClient(ctx context.Context, clientID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetForClient: fetching appointments for client=%d", clientID)

	list, err := s.appointmentRepo.ListByClientID(ctx, clientID)
	if err != nil {
		s.logger.Error("GetForClient: repository error for client=%d: %v", clientID, err)
		return nil, fmt.Errorf("%w: GetForClient - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(list), nil
}

// GetForWorker возвращает записи мастера
func (s *Service) GetForWorker(ctx context.Context, workerID int64) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetForWorker: fetching appointments for worker=%d", workerID)

	list, err := s.appointmentRepo.ListByWorkerID(ctx, workerID)
	if err != nil {
		s.logger.Error("GetForWorker: repository error for worker=%d: %v", workerID, err)
		return nil, fmt.Errorf("%w: GetForWorker - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointmentList(list), nil
}

// Complete отмечает запись выполненной
// Доступно только мастеру, к которому была запись, и только из статуса confirmed
func (s *Service) Complete(ctx context.Context, appointmentID int64, req *models.CompleteAppointmentRequest) error {
	s.logger.Info("Complete: completing appointment id=%d by worker=%d", appointmentID, req.WorkerID)

	a, err := s.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Complete: appointment id=%d not found", appointmentID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	if a.WorkerID != req.WorkerID {
		s.logger.Warn("Complete: access denied for worker=%d to appointment id=%d", req.WorkerID, appointmentID)
		return ErrAccessDenied
	}

	if !a.CanBeCompleted() {
		s.logger.Warn("Complete: appointment id=%d cannot be completed, status=%s", appointmentID, a.Status)
		return ErrCannotComplete
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, appointmentID, domain.StatusCompleted); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			return ErrAppointmentNotFound
		}
		s.logger.Error("Complete: repository error for appointment id=%d: %v", appointmentID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed appointment id=%d", appointmentID)
	return nil
}
