package generate_match

import (
	"context"
	"net/http"
	"time"

	"dogmatch/internal/domain/models"
	"dogmatch/internal/http/dto"
	"dogmatch/internal/http/httputils"

	"github.com/rs/zerolog"
)

type Session interface {
	GenerateMatch(ctx context.Context) (string, error)
	Dog(ctx context.Context, id string) (models.DogRecord, error)
}

// HandlerGenerateMatch просит у каталога матч по текущему избранному.
// Карточка матча резолвится так же, как карточка выдачи; если не вышло, dog=null.
func HandlerGenerateMatch(timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := httputils.SessionAs[Session](r.Context())
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		id, err := sess.GenerateMatch(ctx)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		resp := dto.MatchResponse{Match: id}
		if dog, err := sess.Dog(ctx, id); err == nil {
			resp.Dog = dto.DogFromDomain(dog)
		} else {
			zerolog.Ctx(r.Context()).Warn().Err(err).Str("match", id).Msg("failed to resolve match details")
		}
		httputils.WriteJSONResponse(w, http.StatusOK, resp)
	}
}
