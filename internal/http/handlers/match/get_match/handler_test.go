package get_match

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dogmatch/internal/domain/models"
	"dogmatch/internal/http/handlers/handlertest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandlerGetMatch(t *testing.T) {
	catalog := handlertest.NewCatalog(t)
	sess := handlertest.NewSession(t, catalog)

	rec := httptest.NewRecorder()
	HandlerGetMatch(time.Second)(rec, handlertest.Request(http.MethodGet, "/api/match", "", sess, nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	_, err := sess.ToggleFavorite("a")
	require.NoError(t, err)
	catalog.EXPECT().Match(gomock.Any(), []string{"a"}).Return("a", nil)
	_, err = sess.GenerateMatch(context.Background())
	require.NoError(t, err)

	catalog.EXPECT().Dogs(gomock.Any(), []string{"a"}).Return([]models.DogRecord{{ID: "a", Name: "Rex"}}, nil)

	rec = httptest.NewRecorder()
	HandlerGetMatch(time.Second)(rec, handlertest.Request(http.MethodGet, "/api/match", "", sess, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"match":"a","dog":{"id":"a","img":"","name":"Rex","age":null,"zip_code":"","breed":""}}`, rec.Body.String())
}
