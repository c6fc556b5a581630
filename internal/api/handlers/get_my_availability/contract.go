package get_my_availability

import (
	"context"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/service/availability/models"
)

type AvailabilityService interface {
	GetOwnWeek(ctx context.Context, ownerID int64) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
