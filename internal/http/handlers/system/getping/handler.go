package getping

import (
	"net/http"

	"dogmatch/internal/http/httputils"
)

func HandlerPing() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteTextResponse(w, http.StatusOK, "pong")
	}
}
