package list_favorites

import (
	"net/http"

	"dogmatch/internal/http/dto"
	"dogmatch/internal/http/httputils"
)

type Session interface {
	Favorites() []string
}

func HandlerListFavorites() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := httputils.SessionAs[Session](r.Context())
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		httputils.WriteJSONResponse(w, http.StatusOK, dto.FavoritesResponse{Favorites: nonNil(sess.Favorites())})
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
