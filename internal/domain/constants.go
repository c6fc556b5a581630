package domain

// Business validation constants
const (
	// MaxSlotsPerDay ограничение на количество слотов в одном дне недели
	MaxSlotsPerDay = 48

	MaxNotesLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04" // HH:MM
)

// User roles resolved through the profile service
const (
	RoleWorker = "worker"
	RoleClient = "client"
)
