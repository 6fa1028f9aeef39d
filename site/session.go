package site

import (
	"crypto/sha256"
	"encoding/gob"
	"log"
	"net/http"

	"github.com/Math-Ferraz/blog-parques/constants"
	"github.com/Math-Ferraz/blog-parques/templates"

	"github.com/gorilla/sessions"
)

const loggedInKey = "logged_in"

func init() {
	gob.Register(templates.Flash{})
}

// SessionManager wraps the signed-cookie session store. The session
// carries the admin logged-in flag and one-shot flash notices.
type SessionManager struct {
	store *sessions.CookieStore
}

func NewSessionManager(secret string) *SessionManager {
	if secret == "" {
		secret = "dev-insecure-secret-change-me-now"
	}

	// Separate signing and encryption keys derived from the one secret.
	h := sha256.Sum256([]byte("auth:" + secret))
	e := sha256.Sum256([]byte("enc:" + secret))

	store := sessions.NewCookieStore(h[:], e[:])
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store}
}

func (m *SessionManager) session(r *http.Request) *sessions.Session {
	// Get never fails for a CookieStore with a fresh session fallback;
	// a tampered cookie just comes back as a new empty session.
	s, _ := m.store.Get(r, constants.SESSION_NAME)
	return s
}

func (m *SessionManager) LoggedIn(r *http.Request) bool {
	v, ok := m.session(r).Values[loggedInKey].(bool)
	return ok && v
}

func (m *SessionManager) SetLoggedIn(w http.ResponseWriter, r *http.Request) error {
	s := m.session(r)
	s.Values[loggedInKey] = true
	return s.Save(r, w)
}

// ClearLoggedIn drops the flag. Safe to call when already anonymous.
func (m *SessionManager) ClearLoggedIn(w http.ResponseWriter, r *http.Request) error {
	s := m.session(r)
	delete(s.Values, loggedInKey)
	return s.Save(r, w)
}

func (m *SessionManager) AddFlash(w http.ResponseWriter, r *http.Request, kind, message string) {
	s := m.session(r)
	s.AddFlash(templates.Flash{Kind: kind, Message: message})
	if err := s.Save(r, w); err != nil {
		log.Printf("session save error: %v", err)
	}
}

// Flashes returns pending notices and clears them from the session.
func (m *SessionManager) Flashes(w http.ResponseWriter, r *http.Request) []templates.Flash {
	s := m.session(r)
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := s.Save(r, w); err != nil {
		log.Printf("session save error: %v", err)
	}
	flashes := make([]templates.Flash, 0, len(raw))
	for _, v := range raw {
		if f, ok := v.(templates.Flash); ok {
			flashes = append(flashes, f)
		}
	}
	return flashes
}
