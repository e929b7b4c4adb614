package httputils

import (
	"encoding/json"
	"errors"
	"net/http"

	"dogmatch/internal/domain/models"
)

// MIME: https://developer.mozilla.org/en-US/docs/Web/HTTP/Guides/MIME_types/Common_types

const (
	HeaderContentType     = "Content-Type"
	HeaderContentEncoding = "Content-Encoding"
	HeaderAcceptEncoding  = "Accept-Encoding"
	HeaderContentLength   = "Content-Length"
	HeaderVary            = "Vary"

	MIMEApplicationJSON = "application/json"
	MIMETextHTML        = "text/html"
	MIMETextPlain       = "text/plain"

	EncodingGzip = "gzip"
)

const SessionCookieName = "session_token"

func WriteTextResponse(w http.ResponseWriter, status int, message string) {
	w.Header().Set(HeaderContentType, MIMETextPlain)
	w.WriteHeader(status)
	w.Write([]byte(message))
}

func WriteJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: message})
}

func WriteJSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set(HeaderContentType, MIMEApplicationJSON)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// StatusFromError переводит доменную ошибку в HTTP статус
func StatusFromError(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, models.ErrAuthentication), errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNetwork):
		return http.StatusBadGateway
	case errors.Is(err, models.ErrPrecondition):
		return http.StatusConflict
	case errors.Is(err, models.ErrInvalidData):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnfound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteError пишет JSON ошибку со статусом по типу err
func WriteError(w http.ResponseWriter, err error) {
	WriteJSONError(w, StatusFromError(err), err.Error())
}
