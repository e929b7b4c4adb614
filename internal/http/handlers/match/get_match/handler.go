package get_match

import (
	"context"
	"net/http"
	"time"

	"dogmatch/internal/domain/models"
	"dogmatch/internal/http/dto"
	"dogmatch/internal/http/httputils"
)

type Session interface {
	Match() string
	Dog(ctx context.Context, id string) (models.DogRecord, error)
}

func HandlerGetMatch(timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := httputils.SessionAs[Session](r.Context())
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		id := sess.Match()
		if id == "" {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		resp := dto.MatchResponse{Match: id}
		if dog, err := sess.Dog(ctx, id); err == nil {
			resp.Dog = dto.DogFromDomain(dog)
		}
		httputils.WriteJSONResponse(w, http.StatusOK, resp)
	}
}
