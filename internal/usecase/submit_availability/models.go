package submit_availability

import "github.com/premoprojekt2024TM/Barber-sub000/internal/domain"

// Request модель запроса на отправку недели доступности
// Week содержит сырые данные клиента: день -> упорядоченный список меток HH:MM
// Отсутствующий или пустой день означает "в этот день слотов нет"
type Request struct {
	WorkerID int64
	Week     map[string][]string
}

// DayReport отчет о примененных изменениях за один день
type DayReport struct {
	Day       domain.Weekday
	Created   int
	Deleted   int
	Unchanged int
}

// Response модель ответа с отчетом реконсиляции по дням
type Response struct {
	WorkerID int64
	Days     []DayReport

	// Итоговые счетчики за неделю
	Created   int
	Deleted   int
	Unchanged int
}
