package draftboard

import "context"

// WeekSlot слот недели, как его вернул сервер
type WeekSlot struct {
	ID     int64  `json:"id"`
	Day    string `json:"day"`
	Label  string `json:"label"`
	Status string `json:"status"` // available | accepted
}

// AvailabilityClient сетевой интерфейс доски
// Load и Submit - единственные операции доски, которые ходят в сеть,
// все остальные мутации синхронные и локальные
type AvailabilityClient interface {
	FetchWeek(ctx context.Context) ([]WeekSlot, error)
	SubmitWeek(ctx context.Context, week map[string][]string) error
}
