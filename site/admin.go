package site

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Math-Ferraz/blog-parques/database"
	"github.com/Math-Ferraz/blog-parques/templates"

	"github.com/go-chi/chi/v5"
)

// adminSortOrders whitelists the ?sort= values the listing accepts.
// Anything else falls back to newest-first.
var adminSortOrders = map[string]string{
	"id":     "id ASC",
	"titulo": "title ASC",
	"data":   "created_at DESC",
}

func (s *Site) AdminIndex(w http.ResponseWriter, r *http.Request) {
	order, ok := adminSortOrders[r.URL.Query().Get("sort")]
	if !ok {
		order = "created_at DESC"
	}

	news, err := s.store.ListNewsOrdered(order)
	if err != nil {
		http.Error(w, "Error fetching news", http.StatusInternalServerError)
		return
	}

	render(w, http.StatusOK, templates.AdminIndexPage(s.layoutProps(w, r), news))
}

func newsFromForm(r *http.Request) database.News {
	return database.News{
		Title: r.FormValue("titulo"),
		Tags:  r.FormValue("tags"),
		Image: r.FormValue("imagem"),
		Body:  r.FormValue("conteudo"),
	}
}

func (s *Site) AdminCreateNews(w http.ResponseWriter, r *http.Request) {
	const action = "/admin/noticia/new"

	switch r.Method {
	case "GET":
		render(w, http.StatusOK, templates.AdminFormPage(s.layoutProps(w, r), nil, action, ""))
	case "POST":
		n := newsFromForm(r)
		if err := s.store.CreateNews(&n); err != nil {
			var verr *database.ValidationError
			if errors.As(err, &verr) {
				// Re-render with the submitted values so nothing typed is lost.
				render(w, http.StatusOK, templates.AdminFormPage(s.layoutProps(w, r), &n, action, verr.Field))
				return
			}
			http.Error(w, "Error creating news", http.StatusInternalServerError)
			return
		}

		s.sessions.AddFlash(w, r, "sucesso", "Notícia criada.")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Site) AdminEditNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	action := "/admin/noticia/" + chi.URLParam(r, "id")

	switch r.Method {
	case "GET":
		n, err := s.store.GetNews(uint(id))
		if err != nil {
			if errors.Is(err, database.ErrNewsNotFound) {
				http.NotFound(w, r)
				return
			}
			http.Error(w, "Error fetching news", http.StatusInternalServerError)
			return
		}
		render(w, http.StatusOK, templates.AdminFormPage(s.layoutProps(w, r), n, action, ""))
	case "POST":
		fields := newsFromForm(r)
		if _, err := s.store.UpdateNews(uint(id), fields); err != nil {
			if errors.Is(err, database.ErrNewsNotFound) {
				http.NotFound(w, r)
				return
			}
			var verr *database.ValidationError
			if errors.As(err, &verr) {
				render(w, http.StatusOK, templates.AdminFormPage(s.layoutProps(w, r), &fields, action, verr.Field))
				return
			}
			http.Error(w, "Error updating news", http.StatusInternalServerError)
			return
		}

		s.sessions.AddFlash(w, r, "sucesso", "Notícia atualizada.")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Site) AdminDeleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := s.store.DeleteNews(uint(id)); err != nil {
		if errors.Is(err, database.ErrNewsNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Error deleting news", http.StatusInternalServerError)
		return
	}

	s.sessions.AddFlash(w, r, "sucesso", "Notícia excluída.")
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}
