package domain

import (
	"time"

	"github.com/premoprojekt2024TM/Barber-sub000/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
)

// Appointment represents a confirmed booking of one slot by one client
// A slot is referenced by at most one appointment
type Appointment struct {
	ID       int64
	ClientID int64
	WorkerID int64
	SlotID   int64
	Status   AppointmentStatus
	Notes    *string

	// Denormalized data for dashboard views
	ClientName string
	WorkerName string
	SlotDay    Weekday
	SlotLabel  types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the appointment is still upcoming
func (a *Appointment) IsConfirmed() bool {
	return a.Status == StatusConfirmed
}

// CanBeCompleted returns true if the appointment can be marked completed
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusConfirmed
}
