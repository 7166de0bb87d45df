// Package requestid assigns every inbound request a UUID for log correlation.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"picoplaca/pkg/requestcontext"
)

// Header carries the request ID back to the caller.
const Header = "X-Request-ID"

// Middleware stores a fresh request ID on the context and echoes it in the
// response headers. An ID supplied by the caller is preserved.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)
		ctx := requestcontext.WithRequestID(r.Context(), id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
