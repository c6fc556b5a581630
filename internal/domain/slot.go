package domain

import (
	"time"

	"github.com/premoprojekt2024TM/Barber-sub000/pkg/types"
)

// SlotStatus represents the status of an availability slot
type SlotStatus string

const (
	// SlotAvailable слот открыт для бронирования
	SlotAvailable SlotStatus = "available"

	// SlotAccepted слот занят подтвержденной записью
	// Терминальный статус: принятый слот никогда не возвращается в available
	SlotAccepted SlotStatus = "accepted"
)

// Slot represents one worker-declared availability time unit
// (OwnerID, Day, Label) is unique among live slots
type Slot struct {
	ID        int64
	OwnerID   int64
	Day       Weekday
	Label     types.TimeString
	Status    SlotStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailable returns true if the slot can still be booked
func (s *Slot) IsAvailable() bool {
	return s.Status == SlotAvailable
}

// IsAccepted returns true if the slot has been consumed by a booking
func (s *Slot) IsAccepted() bool {
	return s.Status == SlotAccepted
}
