package site

import (
	"log"
	"net/http"
	"time"

	"github.com/Math-Ferraz/blog-parques/config"
	"github.com/Math-Ferraz/blog-parques/database"
	"github.com/Math-Ferraz/blog-parques/templates"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	g "github.com/maragudk/gomponents"
)

// MailSender delivers a contact-form suggestion. Implemented by
// mailer.Mailer; tests substitute a fake.
type MailSender interface {
	SendSuggestion(name, email, message string) error
}

// Site holds the HTTP layer's dependencies.
type Site struct {
	store    *database.Store
	sessions *SessionManager
	mailer   MailSender
	cfg      *config.Config
}

func New(store *database.Store, sessions *SessionManager, mailer MailSender, cfg *config.Config) *Site {
	return &Site{
		store:    store,
		sessions: sessions,
		mailer:   mailer,
		cfg:      cfg,
	}
}

// Routes builds the router with the full middleware stack.
func (s *Site) Routes() *chi.Mux {
	r := chi.NewRouter()

	CORSMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	})

	r.Use(CORSMiddleware.Handler)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(httprate.LimitByIP(100, time.Minute)) // general rate limiter for all routes (shared across all routes)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RedirectSlashes)

	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	r.Get("/", s.Home)
	r.Get("/atividades", s.Atividades)
	r.Get("/sobre", s.Sobre)
	r.Get("/noticia/{id}", s.ShowNews)
	r.HandleFunc("/participe", s.Participe)

	r.HandleFunc("/admin_login", s.AdminLogin)
	r.Get("/admin_logout", s.AdminLogout)

	r.Route("/admin", func(r chi.Router) {
		r.Use(s.RequireAdmin)

		r.Get("/", s.AdminIndex)
		r.HandleFunc("/noticia/new", s.AdminCreateNews)
		r.HandleFunc("/noticia/{id}", s.AdminEditNews)
		r.Post("/noticia/{id}/delete", s.AdminDeleteNews)
	})

	return r
}

// layoutProps collects the per-request data every page needs: pending
// flashes and whether the admin links should show.
func (s *Site) layoutProps(w http.ResponseWriter, r *http.Request) templates.LayoutProps {
	return templates.LayoutProps{
		LoggedIn: s.sessions.LoggedIn(r),
		Flashes:  s.sessions.Flashes(w, r),
	}
}

func render(w http.ResponseWriter, status int, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := page.Render(w); err != nil {
		log.Printf("render error: %v", err)
	}
}
