package middlewares

import (
	"net/http"
)

// BodyLimit caps the request body at App.RequestBodyLimitInBytes. Reading past
// the cap surfaces *http.MaxBytesError to the handler.
func (m *Middlewares) BodyLimit(next http.Handler) http.Handler {
	limit := m.InternalConfig.App.RequestBodyLimitInBytes()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
