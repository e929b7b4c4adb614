package resolve_details

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"dogmatch/internal/http/dto"
	"dogmatch/internal/http/httputils"
	"dogmatch/internal/services/details"
)

type Session interface {
	Cards(ctx context.Context, ids []string) []details.Card
}

// HandlerResolveDetails resolves every id as its own card. A card whose
// lookup failed comes back with dog=null and loading=true.
func HandlerResolveDetails(timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := httputils.SessionAs[Session](r.Context())
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req dto.DogIDsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputils.WriteJSONError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		if err := req.Validate(); err != nil {
			httputils.WriteError(w, err)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		cards := sess.Cards(ctx, req)
		httputils.WriteJSONResponse(w, http.StatusOK, dto.CardsFromDomain(cards))
	}
}
