package middleware

import (
	"encoding/json"
	"net/http"
	"strings"
)

const operatorIDHeader = "X-Operator-ID"

// Auth требует заголовок X-Operator-ID на мутирующих операциях.
// Сервис работает за внутренним gateway, который аутентифицирует
// оператора и проставляет заголовок; здесь проверяется только его
// наличие.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operatorID := strings.TrimSpace(r.Header.Get(operatorIDHeader))
		if operatorID == "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "отсутствует заголовок X-Operator-ID",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
