package middleware

import (
	"net/http"
	"time"
)

// RequestRecorder описывает приёмник метрик HTTP-слоя.
type RequestRecorder interface {
	RecordRequest(method string, statusCode int, duration time.Duration)
}

// Metrics возвращает middleware, учитывающий код и длительность каждого ответа.
func Metrics(rec RequestRecorder) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			sr := &statusRecorder{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(sr, r)

			rec.RecordRequest(r.Method, sr.statusCode, time.Since(start))
		})
	}
}
