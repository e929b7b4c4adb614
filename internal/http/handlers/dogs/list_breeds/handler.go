package list_breeds

import (
	"context"
	"net/http"

	"dogmatch/internal/http/httputils"
)

type Session interface {
	Breeds(ctx context.Context) []string
}

func HandlerListBreeds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := httputils.SessionAs[Session](r.Context())
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, sess.Breeds(r.Context()))
	}
}
