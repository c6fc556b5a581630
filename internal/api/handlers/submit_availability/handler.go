package submit_availability

import (
	"errors"
	"net/http"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/api/handlers"
	"github.com/premoprojekt2024TM/Barber-sub000/internal/api/middleware"
	submitAvailability "github.com/premoprojekt2024TM/Barber-sub000/internal/usecase/submit_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWeek        = "некорректная неделя: проверьте формат времени HH:MM и дубликаты"
	msgWorkerNotFound     = "мастер не найден"
	msgNotWorker          = "операция доступна только мастерам"
	msgReconcileFailed    = "не удалось сохранить неделю, обновите данные и повторите отправку"
	msgWeekSaved          = "неделя доступности сохранена"
)

type Handler struct {
	useCase SubmitAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase SubmitAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	workerID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует аутентификация")
		return
	}

	var req WeekRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(workerID))
	if err != nil {
		switch {
		case errors.Is(err, submitAvailability.ErrValidation):
			h.logger.Warn("POST /availability - Validation failed: worker_id=%d, error=%v", workerID, err)
			handlers.RespondBadRequest(w, msgInvalidWeek)

		case errors.Is(err, submitAvailability.ErrWorkerNotFound):
			h.logger.Warn("POST /availability - Worker not found: worker_id=%d", workerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, submitAvailability.ErrNotWorker):
			h.logger.Warn("POST /availability - Not a worker: worker_id=%d", workerID)
			handlers.RespondForbidden(w, msgNotWorker)

		case errors.Is(err, submitAvailability.ErrReconcile):
			h.logger.Error("POST /availability - Reconciliation failed: worker_id=%d, error=%v", workerID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgReconcileFailed)

		default:
			h.logger.Error("POST /availability - Failed to submit week: worker_id=%d, error=%v", workerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability - Week saved: worker_id=%d, created=%d, deleted=%d, unchanged=%d",
		workerID, result.Created, result.Deleted, result.Unchanged)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(msgWeekSaved, result))
}
