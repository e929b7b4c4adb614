package get_search

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dogmatch/internal/http/dto"
	"dogmatch/internal/http/httputils"
	"dogmatch/internal/services/search"
)

type Session interface {
	Search() search.Snapshot
	AwaitSearch(ctx context.Context) (search.Snapshot, error)
}

// HandlerGetSearch отдает текущую выдачу. С ?wait=true ждет, пока последний
// запрос поиска завершится, но не дольше waitTimeout.
func HandlerGetSearch(waitTimeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := httputils.SessionAs[Session](r.Context())
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		wait := false
		if raw := r.URL.Query().Get("wait"); raw != "" {
			var err error
			if wait, err = strconv.ParseBool(raw); err != nil {
				httputils.WriteJSONError(w, http.StatusBadRequest, "wait must be a boolean")
				return
			}
		}

		if !wait {
			httputils.WriteJSONResponse(w, http.StatusOK, dto.SearchFromDomain(sess.Search()))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), waitTimeout)
		defer cancel()

		snap, err := sess.AwaitSearch(ctx)
		if err != nil && !errors.Is(err, context.DeadlineExceeded) {
			// клиент ушел
			return
		}
		// по таймауту отдаем то, что есть, с loading=true
		httputils.WriteJSONResponse(w, http.StatusOK, dto.SearchFromDomain(snap))
	}
}
