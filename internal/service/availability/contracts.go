package availability

import (
	"context"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/domain"
	"github.com/premoprojekt2024TM/Barber-sub000/internal/integrations/userservice"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Slot, error)
	ListAvailableByOwner(ctx context.Context, ownerID int64) ([]*domain.Slot, error)
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
