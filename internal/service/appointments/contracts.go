package appointments

import (
	"context"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/domain"
	"github.com/premoprojekt2024TM/Barber-sub000/internal/integrations/userservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	ListByClientID(ctx context.Context, clientID int64) ([]*domain.Appointment, error)
	ListByWorkerID(ctx context.Context, workerID int64) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
}

// UserServiceClient интерфейс клиента сервиса профилей
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
