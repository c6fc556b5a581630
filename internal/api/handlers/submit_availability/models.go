package submit_availability

import (
	submitAvailability "github.com/premoprojekt2024TM/Barber-sub000/internal/usecase/submit_availability"
)

// WeekRequest HTTP request model: вся неделя целиком, метки в формате HH:MM
// Отсутствующий день означает "в этот день слотов нет"
type WeekRequest struct {
	Monday    []string `json:"monday"`
	Tuesday   []string `json:"tuesday"`
	Wednesday []string `json:"wednesday"`
	Thursday  []string `json:"thursday"`
	Friday    []string `json:"friday"`
	Saturday  []string `json:"saturday"`
	Sunday    []string `json:"sunday"`
}

// DayReport отчет по одному дню недели
type DayReport struct {
	Day       string `json:"day"`
	Created   int    `json:"created"`
	Deleted   int    `json:"deleted"`
	Unchanged int    `json:"unchanged"`
}

// WeekResponse HTTP response model с отчетом реконсиляции
type WeekResponse struct {
	Message   string      `json:"message"`
	Days      []DayReport `json:"days"`
	Created   int         `json:"created"`
	Deleted   int         `json:"deleted"`
	Unchanged int         `json:"unchanged"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *WeekRequest) ToUseCaseRequest(workerID int64) *submitAvailability.Request {
	return &submitAvailability.Request{
		WorkerID: workerID,
		Week: map[string][]string{
			"monday":    r.Monday,
			"tuesday":   r.Tuesday,
			"wednesday": r.Wednesday,
			"thursday":  r.Thursday,
			"friday":    r.Friday,
			"saturday":  r.Saturday,
			"sunday":    r.Sunday,
		},
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(message string, resp *submitAvailability.Response) *WeekResponse {
	days := make([]DayReport, 0, len(resp.Days))
	for _, d := range resp.Days {
		days = append(days, DayReport{
			Day:       d.Day.String(),
			Created:   d.Created,
			Deleted:   d.Deleted,
			Unchanged: d.Unchanged,
		})
	}

	return &WeekResponse{
		Message:   message,
		Days:      days,
		Created:   resp.Created,
		Deleted:   resp.Deleted,
		Unchanged: resp.Unchanged,
	}
}
