package logout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"dogmatch/internal/domain/models"
	"dogmatch/internal/http/handlers/handlertest"
	"dogmatch/internal/http/httputils"
	"dogmatch/internal/services/session"

	"github.com/stretchr/testify/assert"
)

type fakeAuth struct {
	err error
	got *session.Session
}

func (f *fakeAuth) Logout(_ context.Context, sess *session.Session) error {
	f.got = sess
	return f.err
}

func TestHandlerLogout(t *testing.T) {
	sess := &session.Session{UserName: "Ann"}

	t.Run("успешный выход", func(t *testing.T) {
		auth := &fakeAuth{}
		rec := httptest.NewRecorder()
		HandlerLogout(auth)(rec, handlertest.Request(http.MethodPost, "/api/logout", "", sess, nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Same(t, sess, auth.got)

		cookies := rec.Result().Cookies()
		if assert.Len(t, cookies, 1) {
			assert.Equal(t, httputils.SessionCookieName, cookies[0].Name)
			assert.Negative(t, cookies[0].MaxAge)
		}
	})

	t.Run("каталог не ответил - сессия остается", func(t *testing.T) {
		auth := &fakeAuth{err: models.ErrNetwork}
		rec := httptest.NewRecorder()
		HandlerLogout(auth)(rec, handlertest.Request(http.MethodPost, "/api/logout", "", sess, nil))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("без сессии", func(t *testing.T) {
		auth := &fakeAuth{}
		rec := httptest.NewRecorder()
		HandlerLogout(auth)(rec, handlertest.Request(http.MethodPost, "/api/logout", "", nil, nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, auth.got)
	})
}
