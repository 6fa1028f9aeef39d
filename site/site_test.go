package site

import (
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Math-Ferraz/blog-parques/config"
	"github.com/Math-Ferraz/blog-parques/database"
)

type sentMail struct {
	name, email, message string
}

type fakeSender struct {
	err  error
	sent []sentMail
}

func (f *fakeSender) SendSuggestion(name, email, message string) error {
	f.sent = append(f.sent, sentMail{name, email, message})
	return f.err
}

const testPassword = "senha-de-teste"

func newTestSite(t *testing.T, sender MailSender) (*Site, *database.Store) {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })

	store := database.NewStore(db)
	cfg := &config.Config{
		AdminUsername: "admin",
		AdminPassword: testPassword,
	}
	return New(store, NewSessionManager("segredo-de-teste"), sender, cfg), store
}

// testClient keeps cookies across requests so sessions behave like a
// browser. follow controls whether redirects are chased.
func testClient(t *testing.T, follow bool) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("creating cookie jar: %v", err)
	}
	client := &http.Client{Jar: jar}
	if !follow {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}
	return client
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("reading body: %v", err)
	}
	return string(b)
}

func login(t *testing.T, client *http.Client, serverURL, password string) *http.Response {
	t.Helper()
	resp, err := client.PostForm(serverURL+"/admin_login", url.Values{
		"username": {"admin"},
		"password": {password},
	})
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	return resp
}

func TestAdminRedirectsAnonymous(t *testing.T) {
	s, _ := newTestSite(t, &fakeSender{})
	server := httptest.NewServer(s.Routes())
	defer server.Close()

	client := testClient(t, false)

	for _, path := range []string{"/admin", "/admin/noticia/new", "/admin/noticia/1"} {
		resp, err := client.Get(server.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusFound {
			t.Errorf("GET %s: got status %d, want %d", path, resp.StatusCode, http.StatusFound)
		}
		if loc := resp.Header.Get("Location"); loc != "/admin_login" {
			t.Errorf("GET %s: redirected to %q, want /admin_login", path, loc)
		}
	}
}

func TestLoginWrongCredentials(t *testing.T) {
	s, _ := newTestSite(t, &fakeSender{})
	server := httptest.NewServer(s.Routes())
	defer server.Close()

	client := testClient(t, true)

	resp := login(t, client, server.URL, "senha-errada")
	body := readBody(t, resp)
	if !strings.Contains(body, "Credenciais inválidas.") {
		t.Errorf("expected invalid-credentials notice, got page without it")
	}

	// Session must remain anonymous.
	noRedirect := testClient(t, false)
	noRedirect.Jar = client.Jar
	resp2, err := noRedirect.Get(server.URL + "/admin")
	if err != nil {
		t.Fatalf("GET /admin: %v", err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusFound {
		t.Errorf("got status %d after failed login, want redirect", resp2.StatusCode)
	}
}

func TestLoginLogoutFlow(t *testing.T) {
	s, _ := newTestSite(t, &fakeSender{})
	server := httptest.NewServer(s.Routes())
	defer server.Close()

	client := testClient(t, true)

	resp := login(t, client, server.URL, testPassword)
	body := readBody(t, resp)
	if !strings.Contains(body, "Login realizado com sucesso!") {
		t.Errorf("expected login success notice")
	}
	if !strings.Contains(body, "Notícias (Cards)") {
		t.Errorf("expected to land on the admin index")
	}

	// Logout, then the admin area must redirect again.
	resp2, err := client.Get(server.URL + "/admin_logout")
	if err != nil {
		t.Fatalf("GET /admin_logout: %v", err)
	}
	readBody(t, resp2)

	noRedirect := testClient(t, false)
	noRedirect.Jar = client.Jar
	resp3, err := noRedirect.Get(server.URL + "/admin")
	if err != nil {
		t.Fatalf("GET /admin: %v", err)
	}
	resp3.Body.Close()
	if resp3.StatusCode != http.StatusFound {
		t.Errorf("got status %d after logout, want redirect", resp3.StatusCode)
	}

	// Logging out twice is fine.
	resp4, err := client.Get(server.URL + "/admin_logout")
	if err != nil {
		t.Fatalf("second GET /admin_logout: %v", err)
	}
	if resp4.StatusCode != http.StatusOK {
		t.Errorf("second logout: got status %d, want 200 after redirect", resp4.StatusCode)
	}
	readBody(t, resp4)
}

func TestParticipeSuccess(t *testing.T) {
	sender := &fakeSender{}
	s, _ := newTestSite(t, sender)
	server := httptest.NewServer(s.Routes())
	defer server.Close()

	noRedirect := testClient(t, false)
	resp, err := noRedirect.PostForm(server.URL+"/participe", url.Values{
		"nome":     {"Ana"},
		"email":    {"ana@example.com"},
		"mensagem": {"Oi"},
	})
	if err != nil {
		t.Fatalf("POST /participe: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Errorf("got status %d, want %d", resp.StatusCode, http.StatusSeeOther)
	}
	if loc := resp.Header.Get("Location"); loc != "/participe" {
		t.Errorf("redirected to %q, want /participe", loc)
	}

	if len(sender.sent) != 1 {
		t.Fatalf("got %d deliveries, want 1", len(sender.sent))
	}
	if got := sender.sent[0]; got.name != "Ana" || got.email != "ana@example.com" || got.message != "Oi" {
		t.Errorf("delivered %+v, want Ana/ana@example.com/Oi", got)
	}

	// Following the redirect shows the success notice once.
	follow := testClient(t, true)
	follow.Jar = noRedirect.Jar
	resp2, err := follow.Get(server.URL + "/participe")
	if err != nil {
		t.Fatalf("GET /participe: %v", err)
	}
	if body := readBody(t, resp2); !strings.Contains(body, "Sugestão enviada com sucesso!") {
		t.Errorf("expected success notice on the form page")
	}
}

func TestParticipeDeliveryFailure(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp: auth failed")}
	s, _ := newTestSite(t, sender)
	server := httptest.NewServer(s.Routes())
	defer server.Close()

	client := testClient(t, true)
	resp, err := client.PostForm(server.URL+"/participe", url.Values{
		"nome":     {"Ana"},
		"email":    {"ana@example.com"},
		"mensagem": {"Oi"},
	})
	if err != nil {
		t.Fatalf("POST /participe: %v", err)
	}

	// The failure never becomes a server error; the visitor lands back
	// on the form with a generic notice.
	if resp.StatusCode != http.StatusOK {
		t.Errorf("got status %d, want 200 after redirect", resp.StatusCode)
	}
	body := readBody(t, resp)
	if !strings.Contains(body, "Erro ao enviar a sugestão. Tente novamente.") {
		t.Errorf("expected generic error notice")
	}
	if strings.Contains(body, "auth failed") {
		t.Errorf("underlying SMTP error leaked to the client")
	}
}

func TestShowNews(t *testing.T) {
	s, store := newTestSite(t, &fakeSender{})
	server := httptest.NewServer(s.Routes())
	defer server.Close()

	n := database.News{
		Title: "Mutirão de plantio",
		Tags:  "plantio, voluntariado",
		Image: "parque1.jpg",
		Body:  "<p>Traga sua <b>muda</b>!</p>",
	}
	if err := store.CreateNews(&n); err != nil {
		t.Fatalf("creating: %v", err)
	}

	client := testClient(t, true)
	resp, err := client.Get(server.URL + "/noticia/1")
	if err != nil {
		t.Fatalf("GET /noticia/1: %v", err)
	}
	body := readBody(t, resp)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d, want 200", resp.StatusCode)
	}
	if !strings.Contains(body, "Mutirão de plantio") {
		t.Errorf("detail page missing title")
	}
	// Body HTML renders unescaped.
	if !strings.Contains(body, "<b>muda</b>") {
		t.Errorf("body HTML was escaped or dropped")
	}
}

func TestShowNewsNotFound(t *testing.T) {
	s, _ := newTestSite(t, &fakeSender{})
	server := httptest.NewServer(s.Routes())
	defer server.Close()

	client := testClient(t, true)
	for _, path := range []string{"/noticia/999", "/noticia/abc"} {
		resp, err := client.Get(server.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusNotFound {
			t.Errorf("GET %s: got status %d, want 404", path, resp.StatusCode)
		}
	}
}

func TestHomeListsNewsNewestFirst(t *testing.T) {
	s, store := newTestSite(t, &fakeSender{})
	server := httptest.NewServer(s.Routes())
	defer server.Close()

	for _, title := range []string{"mais antiga", "mais recente"} {
		n := database.News{Title: title, Tags: "t", Image: "i.jpg", Body: "b"}
		if err := store.CreateNews(&n); err != nil {
			t.Fatalf("creating %q: %v", title, err)
		}
	}

	client := testClient(t, true)
	resp, err := client.Get(server.URL + "/")
	if err != nil {
		t.Fatalf("GET /: %v", err)
	}
	body := readBody(t, resp)

	recent := strings.Index(body, "mais recente")
	old := strings.Index(body, "mais antiga")
	if recent == -1 || old == -1 {
		t.Fatalf("home page missing news titles")
	}
	if recent > old {
		t.Errorf("newest news rendered after older one")
	}
}

func TestAdminCreateValidation(t *testing.T) {
	s, store := newTestSite(t, &fakeSender{})
	server := httptest.NewServer(s.Routes())
	defer server.Close()

	client := testClient(t, true)
	readBody(t, login(t, client, server.URL, testPassword))

	resp, err := client.PostForm(server.URL+"/admin/noticia/new", url.Values{
		"titulo":   {""},
		"tags":     {"tags"},
		"imagem":   {"parque1.jpg"},
		"conteudo": {"<p>conteúdo</p>"},
	})
	if err != nil {
		t.Fatalf("POST create: %v", err)
	}
	body := readBody(t, resp)
	if !strings.Contains(body, "obrigatório") {
		t.Errorf("expected field validation notice on the form")
	}

	news, err := store.ListNews()
	if err != nil {
		t.Fatalf("listing: %v", err)
	}
	if len(news) != 0 {
		t.Errorf("store has %d records after rejected create, want 0", len(news))
	}
}

func TestAdminCRUDFlow(t *testing.T) {
	s, store := newTestSite(t, &fakeSender{})
	server := httptest.NewServer(s.Routes())
	defer server.Close()

	client := testClient(t, true)
	readBody(t, login(t, client, server.URL, testPassword))

	// Create.
	resp, err := client.PostForm(server.URL+"/admin/noticia/new", url.Values{
		"titulo":   {"Festival de inverno"},
		"tags":     {"eventos"},
		"imagem":   {"parque3.jpg"},
		"conteudo": {"<p>Programação completa.</p>"},
	})
	if err != nil {
		t.Fatalf("POST create: %v", err)
	}
	if body := readBody(t, resp); !strings.Contains(body, "Festival de inverno") {
		t.Errorf("admin index missing created news")
	}

	news, err := store.ListNews()
	if err != nil || len(news) != 1 {
		t.Fatalf("got %d records (err %v), want 1", len(news), err)
	}
	id := news[0].ID

	// Update.
	resp, err = client.PostForm(server.URL+"/admin/noticia/1", url.Values{
		"titulo":   {"Festival de inverno 2025"},
		"tags":     {"eventos, música"},
		"imagem":   {"parque3.jpg"},
		"conteudo": {"<p>Programação atualizada.</p>"},
	})
	if err != nil {
		t.Fatalf("POST update: %v", err)
	}
	readBody(t, resp)

	updated, err := store.GetNews(id)
	if err != nil {
		t.Fatalf("fetching updated: %v", err)
	}
	if updated.Title != "Festival de inverno 2025" {
		t.Errorf("got title %q after update", updated.Title)
	}

	// Delete.
	resp, err = client.PostForm(server.URL+"/admin/noticia/1/delete", nil)
	if err != nil {
		t.Fatalf("POST delete: %v", err)
	}
	readBody(t, resp)

	if _, err := store.GetNews(id); !errors.Is(err, database.ErrNewsNotFound) {
		t.Fatalf("got %v after delete, want ErrNewsNotFound", err)
	}
}

func TestAdminEditUnknownID(t *testing.T) {
	s, _ := newTestSite(t, &fakeSender{})
	server := httptest.NewServer(s.Routes())
	defer server.Close()

	client := testClient(t, true)
	readBody(t, login(t, client, server.URL, testPassword))

	resp, err := client.Get(server.URL + "/admin/noticia/42")
	if err != nil {
		t.Fatalf("GET edit: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("got status %d for unknown id, want 404", resp.StatusCode)
	}
}

func TestAdminSortWhitelist(t *testing.T) {
	s, store := newTestSite(t, &fakeSender{})
	server := httptest.NewServer(s.Routes())
	defer server.Close()

	for _, title := range []string{"bbb", "aaa"} {
		n := database.News{Title: title, Tags: "t", Image: "i.jpg", Body: "b"}
		if err := store.CreateNews(&n); err != nil {
			t.Fatalf("creating %q: %v", title, err)
		}
	}

	client := testClient(t, true)
	readBody(t, login(t, client, server.URL, testPassword))

	// Sorted by title.
	resp, err := client.Get(server.URL + "/admin?sort=titulo")
	if err != nil {
		t.Fatalf("GET sorted: %v", err)
	}
	body := readBody(t, resp)
	if strings.Index(body, "aaa") > strings.Index(body, "bbb") {
		t.Errorf("sort=titulo did not order by title")
	}

	// Unknown sort keys fall back to newest first, not an error.
	resp, err = client.Get(server.URL + "/admin?sort=desconhecido")
	if err != nil {
		t.Fatalf("GET with bogus sort: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("got status %d for bogus sort key, want 200", resp.StatusCode)
	}
}
