package create_appointment

import (
	"time"

	reserveSlot "github.com/premoprojekt2024TM/Barber-sub000/internal/usecase/reserve_slot"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	WorkerID int64   `json:"workerId"`
	SlotID   int64   `json:"slotId"`
	Notes    *string `json:"notes,omitempty"`
}

// AppointmentResponse HTTP response model
// Содержит данные мастера и слота для экрана подтверждения
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(clientID int64) *reserveSlot.Request {
	return &reserveSlot.Request{
		ClientID: clientID,
		WorkerID: r.WorkerID,
		SlotID:   r.SlotID,
		Notes:    r.Notes,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *reserveSlot.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:         resp.ID,
		ClientID:   resp.ClientID,
		WorkerID:   resp.WorkerID,
		SlotID:     resp.SlotID,
		Status:     resp.Status,
		Notes:      resp.Notes,
		ClientName: resp.ClientName,
		WorkerName: resp.WorkerName,
		SlotDay:    resp.SlotDay.String(),
		SlotLabel:  resp.SlotLabel.String(),
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
