package middleware

import (
	"log/slog"
	"net/http"

	"github.com/rollnconnect/backend/internal/httpx"
)

// Recover converts panics into a 500 with the structured error envelope. No
// internal detail is leaked to the client.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec != nil {
				slog.Error("panic recovered",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
				)
				httpx.WriteError(w, http.StatusInternalServerError, "internal server error")
			}
		}()

		next.ServeHTTP(w, r)
	})
}
