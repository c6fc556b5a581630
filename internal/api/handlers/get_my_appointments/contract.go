package get_my_appointments

import (
	"context"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/service/appointments/models"
)

type AppointmentsService interface {
	GetMine(ctx context.Context, userID int64) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
