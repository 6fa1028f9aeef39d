package site

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/Math-Ferraz/blog-parques/database"
	"github.com/Math-Ferraz/blog-parques/templates"

	"github.com/go-chi/chi/v5"
)

func (s *Site) Home(w http.ResponseWriter, r *http.Request) {
	news, err := s.store.ListNews()
	if err != nil {
		http.Error(w, "Error fetching news", http.StatusInternalServerError)
		return
	}
	render(w, http.StatusOK, templates.HomePage(s.layoutProps(w, r), news))
}

func (s *Site) Atividades(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, templates.AtividadesPage(s.layoutProps(w, r)))
}

func (s *Site) Sobre(w http.ResponseWriter, r *http.Request) {
	render(w, http.StatusOK, templates.SobrePage(s.layoutProps(w, r)))
}

func (s *Site) ShowNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		render(w, http.StatusNotFound, templates.NotFoundPage(s.layoutProps(w, r)))
		return
	}

	n, err := s.store.GetNews(uint(id))
	if err != nil {
		if errors.Is(err, database.ErrNewsNotFound) {
			render(w, http.StatusNotFound, templates.NotFoundPage(s.layoutProps(w, r)))
			return
		}
		http.Error(w, "Error fetching news", http.StatusInternalServerError)
		return
	}

	render(w, http.StatusOK, templates.NewsPage(s.layoutProps(w, r), n))
}

// Participe serves the contact form and relays submissions by email.
// Delivery failures never surface as server errors; the visitor gets a
// generic notice and the cause is only logged.
func (s *Site) Participe(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case "GET":
		render(w, http.StatusOK, templates.ParticipePage(s.layoutProps(w, r)))
	case "POST":
		nome := r.FormValue("nome")
		email := r.FormValue("email")
		mensagem := r.FormValue("mensagem")

		if err := s.mailer.SendSuggestion(nome, email, mensagem); err != nil {
			log.Printf("contact delivery failed: %v", err)
			s.sessions.AddFlash(w, r, "erro", "Erro ao enviar a sugestão. Tente novamente.")
		} else {
			s.sessions.AddFlash(w, r, "sucesso", "Sugestão enviada com sucesso! Obrigado pela contribuição.")
		}

		http.Redirect(w, r, "/participe", http.StatusSeeOther)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
