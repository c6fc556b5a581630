package get_my_appointments

import (
	"errors"
	"net/http"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/api/handlers"
	"github.com/premoprojekt2024TM/Barber-sub000/internal/api/middleware"
	appointmentsService "github.com/premoprojekt2024TM/Barber-sub000/internal/service/appointments"
)

const (
	msgUserNotFound = "пользователь не найден"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/mine
// Список записей вызывающего: клиент видит свои бронирования, мастер - записи к себе
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, "отсутствует аутентификация")
		return
	}

	result, err := h.service.GetMine(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrUserNotFound):
			h.logger.Warn("GET /appointments/mine - User not found: user_id=%d", userID)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /appointments/mine - Failed to get appointments: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments/mine - Retrieved %d appointments: user_id=%d",
		len(result.Appointments), userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
