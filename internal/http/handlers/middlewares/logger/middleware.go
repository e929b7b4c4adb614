package logger

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const HeaderRequestID = "X-Request-ID"

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	if r.statusCode == 0 {
		r.statusCode = statusCode
	}
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.statusCode == 0 {
		r.statusCode = http.StatusOK
	}
	size, err := r.ResponseWriter.Write(b)
	r.size += size
	return size, err
}

// MiddlewareLogging пишет одну строку на запрос и кладет логгер с request_id в контекст
func MiddlewareLogging(log *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			requestID := r.Header.Get(HeaderRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(HeaderRequestID, requestID)

			reqLog := log.With().Str("request_id", requestID).Logger()
			recorder := &responseRecorder{ResponseWriter: w}

			reqLog.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request started")

			next.ServeHTTP(recorder, r.WithContext(reqLog.WithContext(r.Context())))

			if recorder.statusCode == 0 {
				recorder.statusCode = http.StatusOK
			}
			duration := time.Since(start)

			var event *zerolog.Event
			var msg string
			switch {
			case recorder.statusCode >= 500:
				event, msg = reqLog.Error().Str("error_type", "server_error"), "server error"
			case recorder.statusCode >= 400:
				event, msg = reqLog.Warn().Str("error_type", "client_error"), "client error"
			default:
				event, msg = reqLog.Info(), "request completed"
			}

			event = event.
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", recorder.statusCode).
				Dur("duration_ms", duration).
				Int("bytes", recorder.size).
				Str("ip", r.RemoteAddr)

			// ожидание поиска (?wait=true) бывает долгим, это не аномалия
			if duration > 100*time.Millisecond && r.URL.Query().Get("wait") == "" {
				event = event.Bool("slow", true)
			}

			event.Msg(msg)
		})
	}
}
