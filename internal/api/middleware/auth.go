package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/akimovv/VRM-BookingService/internal/api/handlers"
)

type contextKey string

const (
	userIDKey contextKey = "userID"
	staffKey  contextKey = "isStaff"

	headerUserID = "X-User-ID"
	headerRole   = "X-User-Role"

	roleStaff = "staff"

	msgMissingUserID = "отсутствует заголовок X-User-ID"
	msgInvalidUserID = "некорректный заголовок X-User-ID"
)

// Auth извлекает идентификатор пользователя из заголовка X-User-ID
// и кладет его в контекст запроса
// Аутентификация выполняется на API gateway; сервис доверяет заголовкам
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(headerUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, staffKey, r.Header.Get(headerRole) == roleStaff)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID возвращает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// IsStaff возвращает true, если запрос выполнен от имени персонала
func IsStaff(ctx context.Context) bool {
	isStaff, ok := ctx.Value(staffKey).(bool)
	return ok && isStaff
}

// RequireStaff пропускает только запросы персонала
// Используется для управляющих эндпоинтов: тарифы, платежи, календарь объекта
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsStaff(r.Context()) {
			handlers.RespondForbidden(w, "доступ только для персонала")
			return
		}
		next.ServeHTTP(w, r)
	})
}
