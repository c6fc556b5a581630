package get_availability

import (
	"context"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/service/availability/models"
)

type AvailabilityService interface {
	ListByWorker(ctx context.Context, workerID int64) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
