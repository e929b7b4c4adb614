// Package handlertest собирает сессии и запросы для тестов хендлеров.
package handlertest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"dogmatch/internal/domain/models"
	"dogmatch/internal/http/httputils"
	"dogmatch/internal/mocks"
	"dogmatch/internal/services/session"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// NewSession - живая сессия поверх мока каталога. Поиск отвечает пустой выдачей,
// если тест не задал свое ожидание до создания сессии.
func NewSession(t *testing.T, catalog *mocks.MockCatalog) *session.Session {
	t.Helper()
	log := zerolog.Nop()
	sess := session.New(uuid.New(), "Ann", time.Now().Add(time.Hour), catalog, &log,
		session.Options{RequestTimeout: time.Second, DetailConcurrency: 4})
	t.Cleanup(sess.Close)
	return sess
}

// NewCatalog returns a catalog mock whose searches succeed with an empty result.
func NewCatalog(t *testing.T) *mocks.MockCatalog {
	t.Helper()
	catalog := mocks.NewMockCatalog(gomock.NewController(t))
	catalog.EXPECT().Search(gomock.Any(), gomock.Any()).Return(models.SearchResult{}, nil).AnyTimes()
	return catalog
}

// Request строит запрос с сессией в контексте. vars - переменные пути для mux.
func Request(method, target, body string, sess any, vars map[string]string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if sess != nil {
		req = req.WithContext(httputils.WithSession(req.Context(), sess))
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req
}

func AwaitSearch(t *testing.T, sess *session.Session) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := sess.AwaitSearch(ctx)
	require.NoError(t, err)
}
