package middleware

import (
	"net/http"

	"github.com/heartmarshall/partsdb-backend/pkg/ctxutil"
)

// RequireLogin rejects requests whose actor is not in the users group.
func RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := ctxutil.ActorFromCtx(r.Context())
		if !ok || !actor.IsLoggedIn() {
			writeMessage(w, http.StatusUnauthorized, "require log in")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests whose actor is not an administrator.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !ctxutil.IsAdminCtx(r.Context()) {
			writeMessage(w, http.StatusUnauthorized, "require admin")
			return
		}
		next.ServeHTTP(w, r)
	})
}
