// Package middleware HTTP middleware сервиса
package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-PricingService/internal/api/handlers"
)

// HeaderUserID заголовок с ID оператора.
// Проставляется API-гейтвеем после аутентификации сессии
const HeaderUserID = "X-User-ID"

type userIDKey struct{}

// Auth проверяет наличие корректного X-User-ID и кладет его в context.
// Мутации ценового календаря доступны только операторам консоли
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderUserID)
		if raw == "" {
			handlers.RespondError(w, http.StatusUnauthorized, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondError(w, http.StatusUnauthorized, "некорректный заголовок X-User-ID")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey{}, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromContext возвращает ID оператора, положенный Auth middleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey{}).(int64)
	return id, ok
}
