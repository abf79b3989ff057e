package middleware

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AccessLog пишет строку лога на каждый запрос; 5xx пишутся с уровнем error
func AccessLog(logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := newStatusRecorder(w)

			next.ServeHTTP(rec, r)

			status := rec.Status()
			duration := time.Since(start).Milliseconds()
			if status >= http.StatusInternalServerError {
				logger.Error("HTTP %s %s - status=%d, duration_ms=%d", r.Method, r.URL.Path, status, duration)
				return
			}
			logger.Info("HTTP %s %s - status=%d, duration_ms=%d", r.Method, r.URL.Path, status, duration)
		})
	}
}
