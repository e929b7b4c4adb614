package generate_match

import (
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

func TestHandlerGenerateMatch(t *testing.T) {
	catalog := handlertest.NewCatalog(t)
	sess := handlertest.NewSession(t, catalog)
	handler := HandlerGenerateMatch(time.Second)

	post := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		handler(rec, handlertest.Request(http.MethodPost, "/api/match", "", sess, nil))
		return rec
	}

	rec := post()
	assert.Equal(t, http.StatusConflict, rec.Code, "no favorites yet")

	_, err := sess.ToggleFavorite("a")
	require.NoError(t, err)
	_, err = sess.ToggleFavorite("b")
	require.NoError(t, err)

	gomock.InOrder(
		catalog.EXPECT().Match(gomock.Any(), []string{"a", "b"}).Return("b", nil),
		catalog.EXPECT().Match(gomock.Any(), []string{"a", "b"}).Return("", models.ErrNetwork),
	)
	catalog.EXPECT().Dogs(gomock.Any(), []string{"b"}).Return([]models.DogRecord{{ID: "b", Name: "Bo"}}, nil)

	rec = post()
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"match":"b","dog":{"id":"b","img":"","name":"Bo","age":null,"zip_code":"","breed":""}}`, rec.Body.String())

	rec = post()
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "b", sess.Match(), "failed generation keeps the previous match")
}

func TestHandlerGenerateMatch_DetailsUnavailable(t *testing.T) {
	catalog := handlertest.NewCatalog(t)
	sess := handlertest.NewSession(t, catalog)
	_, err := sess.ToggleFavorite("a")
	require.NoError(t, err)

	catalog.EXPECT().Match(gomock.Any(), []string{"a"}).Return("a", nil)
	catalog.EXPECT().Dogs(gomock.Any(), []string{"a"}).Return(nil, models.ErrNetwork)

	rec := httptest.NewRecorder()
	HandlerGenerateMatch(time.Second)(rec, handlertest.Request(http.MethodPost, "/api/match", "", sess, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"match":"a","dog":null}`, rec.Body.String())
}
