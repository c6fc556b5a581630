package create_appointment

import (
	"errors"
	"net/http"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/api/handlers"
	"github.com/premoprojekt2024TM/Barber-sub000/internal/api/middleware"
	reserveSlot "github.com/premoprojekt2024TM/Barber-sub000/internal/usecase/reserve_slot"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные запроса"
	msgSelfBooking        = "нельзя записаться к самому себе"
	msgWorkerNotFound     = "мастер не найден"
	msgClientNotFound     = "клиент не найден"
	msgSlotNotFound       = "слот не найден"
	msgSlotUnavailable    = "это время только что заняли, выберите другой слот"
)

type Handler struct {
	useCase ReserveSlotUseCase
	logger  Logger
}

func NewHandler(useCase ReserveSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
// Проигранная гонка за слот возвращается как 409 Conflict: клиент должен
// выбрать время заново, а не получить молчаливую подмену слота
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует аутентификация")
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(clientID))
	if err != nil {
		switch {
		case errors.Is(err, reserveSlot.ErrSelfBooking):
			h.logger.Warn("POST /appointments - Self booking rejected: user_id=%d", clientID)
			handlers.RespondBadRequest(w, msgSelfBooking)

		case errors.Is(err, reserveSlot.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: client_id=%d, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, reserveSlot.ErrWorkerNotFound):
			h.logger.Warn("POST /appointments - Worker not found: client_id=%d, worker_id=%d", clientID, req.WorkerID)
			handlers.RespondNotFound(w, msgWorkerNotFound)

		case errors.Is(err, reserveSlot.ErrClientNotFound):
			h.logger.Warn("POST /appointments - Client not found: client_id=%d", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, reserveSlot.ErrSlotNotFound):
			h.logger.Warn("POST /appointments - Slot not found: client_id=%d, slot_id=%d", clientID, req.SlotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, reserveSlot.ErrSlotUnavailable):
			h.logger.Warn("POST /appointments - Slot unavailable: client_id=%d, slot_id=%d", clientID, req.SlotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		default:
			h.logger.Error("POST /appointments - Failed to reserve slot: client_id=%d, slot_id=%d, error=%v",
				clientID, req.SlotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%d, client_id=%d, slot_id=%d",
		result.ID, clientID, req.SlotID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
