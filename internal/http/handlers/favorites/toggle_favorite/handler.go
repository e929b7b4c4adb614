package toggle_favorite

import (
	"net/http"

	"dogmatch/internal/http/dto"
	"dogmatch/internal/http/httputils"

	"github.com/gorilla/mux"
)

type Session interface {
	ToggleFavorite(id string) (bool, error)
	Favorites() []string
}

func HandlerToggleFavorite() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := httputils.SessionAs[Session](r.Context())
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		id := mux.Vars(r)["id"]
		favorite, err := sess.ToggleFavorite(id)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}

		favorites := sess.Favorites()
		if favorites == nil {
			favorites = []string{}
		}
		httputils.WriteJSONResponse(w, http.StatusOK, dto.ToggleFavoriteResponse{
			ID:        id,
			Favorite:  favorite,
			Favorites: favorites,
		})
	}
}
