package auth

import (
	"context"
	"net/http"

	"dogmatch/internal/http/httputils"
	"dogmatch/internal/services/session"
)

type Authentication interface {
	ValidateAndGetSession(ctx context.Context, token string) (*session.Session, error)
}

// MiddlewareAuth пропускает запрос дальше только с живой сессией в контексте
func MiddlewareAuth(auth Authentication) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			cookie, err := r.Cookie(httputils.SessionCookieName)
			if err != nil || cookie.Value == "" {
				httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
				return
			}

			sess, err := auth.ValidateAndGetSession(ctx, cookie.Value)
			if err != nil {
				// кука больше не действует - стираем ее у клиента
				http.SetCookie(w, httputils.ExpiredSessionCookie())
				httputils.WriteJSONError(w, http.StatusUnauthorized, "session expired or invalid")
				return
			}

			next.ServeHTTP(w, r.WithContext(httputils.WithSession(ctx, sess)))
		})
	}
}
