package site

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"github.com/Math-Ferraz/blog-parques/templates"
)

// AdminLogin serves the login form and checks submitted credentials
// against the configured pair. The failure notice never says which of
// the two fields was wrong.
func (s *Site) AdminLogin(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		if s.sessions.LoggedIn(r) {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		render(w, http.StatusOK, templates.LoginPage(s.layoutProps(w, r)))
	case "POST":
		username := strings.TrimSpace(r.FormValue("username"))
		password := r.FormValue("password")

		if !s.credentialsMatch(username, password) {
			s.sessions.AddFlash(w, r, "erro", "Credenciais inválidas.")
			http.Redirect(w, r, "/admin_login", http.StatusSeeOther)
			return
		}

		if err := s.sessions.SetLoggedIn(w, r); err != nil {
			log.Printf("session save error: %v", err)
			s.sessions.AddFlash(w, r, "erro", "Erro de sessão. Tente novamente.")
			http.Redirect(w, r, "/admin_login", http.StatusSeeOther)
			return
		}

		s.sessions.AddFlash(w, r, "sucesso", "Login realizado com sucesso!")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Site) credentialsMatch(username, password string) bool {
	// With no configured password the admin area stays locked.
	if s.cfg.AdminPassword == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.AdminUsername))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword))
	return userOK&passOK == 1
}

// AdminLogout clears the session flag. Idempotent: logging out while
// anonymous is not an error.
func (s *Site) AdminLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.ClearLoggedIn(w, r); err != nil {
		log.Printf("session save error: %v", err)
	}
	s.sessions.AddFlash(w, r, "sucesso", "Você saiu da sua conta.")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
