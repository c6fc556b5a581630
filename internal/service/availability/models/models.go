package models

import (
	"github.com/premoprojekt2024TM/Barber-sub000/internal/domain"
)

// AvailabilityResponse открытая неделя мастера: день -> отсортированные метки HH:MM
// Все семь дней присутствуют всегда, день без слотов - пустой список
type AvailabilityResponse struct {
	WorkerID     int64               `json:"workerId"`
	Availability map[string][]string `json:"availability"`
}

// SlotView слот недели мастера для редактора черновика
// В отличие от публичной доступности содержит ID, статус и принятые слоты
type SlotView struct {
	ID     int64  `json:"id"`
	Day    string `json:"day"`
	Label  string `json:"label"`
	Status string `json:"status"`
}

// WeekResponse полная неделя мастера (включая принятые слоты)
type WeekResponse struct {
	WorkerID int64      `json:"workerId"`
	Slots    []SlotView `json:"slots"`
}

// FromDomainAvailability группирует открытые слоты по дням недели
func FromDomainAvailability(workerID int64, slots []*domain.Slot) *AvailabilityResponse {
	availability := make(map[string][]string, len(domain.Weekdays))
	for _, day := range domain.Weekdays {
		availability[day.String()] = []string{}
	}

	for _, s := range slots {
		day := s.Day.String()
		availability[day] = append(availability[day], s.Label.String())
	}

	return &AvailabilityResponse{
		WorkerID:     workerID,
		Availability: availability,
	}
}

// FromDomainWeek конвертирует слоты недели в представление для редактора
func FromDomainWeek(workerID int64, slots []*domain.Slot) *WeekResponse {
	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, SlotView{
			ID:     s.ID,
			Day:    s.Day.String(),
			Label:  s.Label.String(),
			Status: string(s.Status),
		})
	}

	return &WeekResponse{
		WorkerID: workerID,
		Slots:    views,
	}
}
