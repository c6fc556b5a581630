package submit_availability

import (
	"context"

	submitAvailability "github.com/premoprojekt2024TM/Barber-sub000/internal/usecase/submit_availability"
)

type SubmitAvailabilityUseCase interface {
	Execute(ctx context.Context, req *submitAvailability.Request) (*submitAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
