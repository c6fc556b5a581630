package get_my_availability

import (
	"errors"
	"net/http"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/api/handlers"
	"github.com/premoprojekt2024TM/Barber-sub000/internal/api/middleware"
	availabilityService "github.com/premoprojekt2024TM/Barber-sub000/internal/service/availability"
)

const (
	msgWorkerNotFound = "мастер не найден"
	msgNotWorker      = "операция доступна только мастерам"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/mine
// Полная неделя владельца, включая принятые слоты - источник данных
// для редактора черновика
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует аутентификация")
		return
	}

	result, err := h.service.GetOwnWeek(r.Context(), workerID)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrWorkerNotFound):
			h.logger.Warn("GET /availability/mine - Worker not found: worker_id=%d", workerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, availabilityService.ErrNotWorker):
			h.logger.Warn("GET /availability/mine - Not a worker: worker_id=%d", workerID)
			handlers.RespondForbidden(w, msgNotWorker)

		default:
			h.logger.Error("GET /availability/mine - Failed to get week: worker_id=%d, error=%v", workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/mine - Week retrieved: worker_id=%d, slots=%d", workerID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
