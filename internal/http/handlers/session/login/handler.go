package login

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"dogmatch/internal/http/dto"
	"dogmatch/internal/http/httputils"
	"dogmatch/internal/services/session"
)

type Authentication interface {
	Login(ctx context.Context, name, email string) (*session.Session, string, time.Time, error)
}

func HandlerLogin(auth Authentication) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dto.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		if err := req.Validate(); err != nil {
			httputils.WriteError(w, err)
			return
		}

		sess, token, expiresAt, err := auth.Login(r.Context(), req.Name, req.Email)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		http.SetCookie(w, httputils.SessionCookie(token, expiresAt))
		httputils.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
			Name:      sess.UserName,
			ExpiresAt: expiresAt,
		})
	}
}
