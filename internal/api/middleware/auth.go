package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/premoprojekt2024TM/Barber-sub000/internal/api/handlers"
)

// userIDHeader заголовок с ID аутентифицированного пользователя
// Аутентификация и выпуск сессий - зона ответственности API gateway
const userIDHeader = "X-User-ID"

type userIDContextKey struct{}

// Auth проверяет наличие корректного X-User-ID и кладет его в контекст запроса
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID возвращает ID аутентифицированного пользователя из контекста
func UserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDContextKey{}).(int64)
	return id, ok
}
