package site

import (
	"net/http"
)

// RequireAdmin gates the whole administrative subtree. Anonymous
// requests are redirected to the login page before any admin handler
// runs.
func (s *Site) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.sessions.LoggedIn(r) {
			http.Redirect(w, r, "/admin_login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
