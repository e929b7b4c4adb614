package logout

import (
	"context"
	"net/http"

	"dogmatch/internal/http/httputils"
	"dogmatch/internal/services/session"

	"github.com/rs/zerolog"
)

type Authentication interface {
	Logout(ctx context.Context, sess *session.Session) error
}

// HandlerLogout закрывает сессию. Если каталог не подтвердил выход, сессия остается.
func HandlerLogout(auth Authentication) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		sess, ok := httputils.SessionAs[*session.Session](ctx)
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		if err := auth.Logout(ctx, sess); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("logout failed, session kept")
			httputils.WriteError(w, err)
			return
		}

		http.SetCookie(w, httputils.ExpiredSessionCookie())
		w.WriteHeader(http.StatusNoContent)
	}
}
