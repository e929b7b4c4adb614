package get_filters

import (
	"net/http"

	"dogmatch/internal/domain/filter"
	"dogmatch/internal/http/dto"
	"dogmatch/internal/http/httputils"
)

type Session interface {
	Filters() filter.State
}

func HandlerGetFilters() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := httputils.SessionAs[Session](r.Context())
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.FiltersFromDomain(sess.Filters()))
	}
}
