package submit_availability

import (
	"context"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/domain"
	"github.com/premoprojekt2024TM/Barber-sub000/internal/integrations/userservice"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	ListByOwnerAndDay(ctx context.Context, ownerID int64, day domain.Weekday) ([]*domain.Slot, error)
	DeleteAvailableByIDs(ctx context.Context, ids []int64) (int64, error)
}

// UserServiceClient интерфейс клиента сервиса профилей
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// TransactionManager интерфейс для управления транзакциями
// Реконсиляция выполняет изменения каждого дня в отдельной транзакции
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
