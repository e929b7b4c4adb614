package get_dog

import (
	"context"
	"net/http"
	"time"

	"dogmatch/internal/domain/models"
	"dogmatch/internal/http/dto"
	"dogmatch/internal/http/httputils"

	"github.com/gorilla/mux"
)

type Session interface {
	Dog(ctx context.Context, id string) (models.DogRecord, error)
}

func HandlerGetDog(timeout time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := httputils.SessionAs[Session](r.Context())
		if !ok {
			httputils.WriteJSONError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		id := mux.Vars(r)["id"]
		if id == "" {
			httputils.WriteJSONError(w, http.StatusBadRequest, "dog id is required")
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		dog, err := sess.Dog(ctx, id)
		if err != nil {
			httputils.WriteError(w, err)
			return
		}
		httputils.WriteJSONResponse(w, http.StatusOK, dto.DogFromDomain(dog))
	}
}
