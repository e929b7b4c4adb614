package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLogging(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		requestID string
		wantLevel string
		wantMsg   string
		wantType  string
	}{
		{name: "успешный запрос", status: http.StatusOK, wantLevel: "info", wantMsg: "request completed"},
		{name: "ошибка клиента", status: http.StatusConflict, wantLevel: "warn", wantMsg: "client error", wantType: "client_error"},
		{name: "ошибка сервера", status: http.StatusBadGateway, requestID: "req-1", wantLevel: "error", wantMsg: "server error", wantType: "server_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := zerolog.New(&buf).Level(zerolog.InfoLevel)

			var ctxLogged bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctxLogged = zerolog.Ctx(r.Context()).GetLevel() != zerolog.Disabled
				w.WriteHeader(tt.status)
				w.Write([]byte("body"))
			})

			req := httptest.NewRequest(http.MethodGet, "/api/search", nil)
			if tt.requestID != "" {
				req.Header.Set(HeaderRequestID, tt.requestID)
			}
			rec := httptest.NewRecorder()

			MiddlewareLogging(&log)(next).ServeHTTP(rec, req)

			assert.True(t, ctxLogged, "handler sees the request logger")
			requestID := rec.Header().Get(HeaderRequestID)
			require.NotEmpty(t, requestID)
			if tt.requestID != "" {
				assert.Equal(t, tt.requestID, requestID)
			}

			var entry map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tt.wantLevel, entry["level"])
			assert.Equal(t, tt.wantMsg, entry["message"])
			assert.Equal(t, float64(tt.status), entry["status"])
			assert.Equal(t, float64(4), entry["bytes"])
			assert.Equal(t, requestID, entry["request_id"])
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, entry["error_type"])
			} else {
				assert.NotContains(t, entry, "error_type")
			}
		})
	}
}

func TestMiddlewareLogging_DurationInMilliseconds(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.InfoLevel)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(20 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})
	MiddlewareLogging(&log)(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	ms, ok := entry["duration_ms"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, ms, float64(20))
	assert.Less(t, ms, float64(5000))
}
