package compressor

import (
	"compress/gzip"
	"net/http"
	"strings"

	"dogmatch/internal/http/httputils"
)

// MiddlewareCompressing возвращает middleware для gzip сжатия/распаковки
func MiddlewareCompressing() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Обработка входящего сжатого контента
			if strings.Contains(r.Header.Get(httputils.HeaderContentEncoding), httputils.EncodingGzip) {
				gz, err := gzip.NewReader(r.Body)
				if err != nil {
					httputils.WriteJSONError(w, http.StatusBadRequest, "invalid gzip data")
					return
				}
				defer gz.Close()
				r.Body = gz
				r.Header.Del(httputils.HeaderContentEncoding)
			}

			if !strings.Contains(r.Header.Get(httputils.HeaderAcceptEncoding), httputils.EncodingGzip) {
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Add(httputils.HeaderVary, httputils.HeaderAcceptEncoding)
			gw := &gzipResponseWriter{ResponseWriter: w}
			defer gw.Close()

			next.ServeHTTP(gw, r)
		})
	}
}

// gzipResponseWriter решает, сжимать ли ответ, по его Content-Type
type gzipResponseWriter struct {
	http.ResponseWriter
	gz          *gzip.Writer
	wroteHeader bool
}

func (w *gzipResponseWriter) WriteHeader(status int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true

	if status != http.StatusNoContent && status != http.StatusNotModified && isCompressible(w.Header().Get(httputils.HeaderContentType)) {
		w.Header().Set(httputils.HeaderContentEncoding, httputils.EncodingGzip)
		w.Header().Del(httputils.HeaderContentLength)
		w.gz = gzip.NewWriter(w.ResponseWriter)
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	if w.gz != nil {
		return w.gz.Write(b)
	}
	return w.ResponseWriter.Write(b)
}

func (w *gzipResponseWriter) Close() error {
	if w.gz == nil {
		return nil
	}
	return w.gz.Close()
}

func isCompressible(contentType string) bool {
	return strings.HasPrefix(contentType, httputils.MIMEApplicationJSON) ||
		strings.HasPrefix(contentType, httputils.MIMETextHTML) ||
		strings.HasPrefix(contentType, httputils.MIMETextPlain)
}
