package models

import (
	"time"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/domain"
)

// AppointmentResponse денормализованное представление записи для дашбордов
// Содержит имя контрагента и день/время слота без дополнительных запросов
type AppointmentResponse struct {
	ID         int64   `json:"id"`
	ClientID   int64   `json:"clientId"`
	WorkerID   int64   `json:"workerId"`
	SlotID     int64   `json:"slotId"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes,omitempty"`
	ClientName string  `json:"clientName"`
	WorkerName string  `json:"workerName"`
	SlotDay    string  `json:"slotDay"`
	SlotLabel  string  `json:"slotLabel"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// CompleteAppointmentRequest запрос на отметку записи выполненной
type CompleteAppointmentRequest struct {
	WorkerID int64
}

// FromDomainAppointment конвертирует доменную запись в представление
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         a.ID,
		ClientID:   a.ClientID,
		WorkerID:   a.WorkerID,
		SlotID:     a.SlotID,
		Status:     string(a.Status),
		Notes:      a.Notes,
		ClientName: a.ClientName,
		WorkerName: a.WorkerName,
		SlotDay:    a.SlotDay.String(),
		SlotLabel:  a.SlotLabel.String(),
		CreatedAt:  a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  a.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainAppointmentList конвертирует список доменных записей
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	appointments := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		appointments = append(appointments, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{Appointments: appointments}
}
