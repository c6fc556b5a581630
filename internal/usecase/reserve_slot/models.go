package reserve_slot

import (
	"time"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/domain"
	"github.com/premoprojekt2024TM/Barber-sub000/pkg/types"
)

// Request модель запроса на бронирование слота
type Request struct {
	ClientID int64   // ID клиента (аутентифицированный принципал)
	WorkerID int64   // ID мастера
	SlotID   int64   // ID бронируемого слота
	Notes    *string // Заметки к записи (опционально)
}

// Response модель ответа с созданной записью
// Содержит денормализованные данные мастера и слота для экрана подтверждения
type Response struct {
	ID       int64
	ClientID int64
	WorkerID int64
	SlotID   int64
	Status   string
	Notes    *string

	ClientName string
	WorkerName string
	SlotDay    domain.Weekday
	SlotLabel  types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}
