package get_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/api/handlers"
	availabilityService "github.com/premoprojekt2024TM/Barber-sub000/internal/service/availability"
)

const (
	msgInvalidWorkerID = "некорректный ID мастера"
	msgWorkerNotFound  = "мастер не найден"
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

// Handle GET /api/v1/availability/{workerId}
// Возвращает только открытые слоты; мастер без слотов - 200 с пустыми днями
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	workerID, err := strconv.ParseInt(vars["workerId"], 10, 64)
	if err != nil || workerID <= 0 {
		h.logger.Warn("GET /availability/{workerId} - Invalid worker ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWorkerID)
		return
	}

	result, err := h.service.ListByWorker(r.Context(), workerID)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrWorkerNotFound),
			errors.Is(err, availabilityService.ErrNotWorker):
			h.logger.Warn("GET /availability/{workerId} - Worker not found: worker_id=%d", workerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		default:
			h.logger.Error("GET /availability/{workerId} - Failed to get availability: worker_id=%d, error=%v",
				workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/{workerId} - Availability retrieved: worker_id=%d", workerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
