package middleware

import (
	"net"
	"net/http"

	"github.com/heartmarshall/partsdb-backend/pkg/ctxutil"
)

// ClientIP stores the caller address (without port) in the context. Put it
// after chi's RealIP so proxy headers are honoured.
func ClientIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := ctxutil.WithClientIP(r.Context(), hostOnly(r.RemoteAddr))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func hostOnly(addr string) string {
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return host
}
