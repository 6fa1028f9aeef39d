package templates

import (
	"fmt"

	"github.com/Math-Ferraz/blog-parques/database"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// AdminColumn describes one column of the admin listing. The table is
// driven entirely by this slice: which columns show up, their labels and
// which ones are sortable are data, not handler logic.
type AdminColumn struct {
	Key      string
	Label    string
	Sortable bool
	Value    func(n database.News) string
}

var AdminColumns = []AdminColumn{
	{Key: "id", Label: "ID", Sortable: true, Value: func(n database.News) string { return fmt.Sprintf("%d", n.ID) }},
	{Key: "titulo", Label: "Título da Notícia", Sortable: true, Value: func(n database.News) string { return n.Title }},
	{Key: "tags", Label: "Tags/Metadata", Value: func(n database.News) string { return n.Tags }},
	{Key: "imagem", Label: "Arquivo da Imagem", Value: func(n database.News) string { return n.Image }},
	{Key: "data", Label: "Data de Criação", Sortable: true, Value: func(n database.News) string { return n.CreatedAt.Format("02/01/2006 15:04") }},
}

// AdminFormField describes one input of the create/edit form.
type AdminFormField struct {
	Name  string
	Label string
	Long  bool
	Value func(n *database.News) string
}

var AdminFormFields = []AdminFormField{
	{Name: "titulo", Label: "Título da Notícia", Value: func(n *database.News) string { return n.Title }},
	{Name: "tags", Label: "Tags/Metadata", Value: func(n *database.News) string { return n.Tags }},
	{Name: "imagem", Label: "Nome do Arquivo da Imagem (Ex: parque1.jpg)", Value: func(n *database.News) string { return n.Image }},
	{Name: "conteudo", Label: "Conteúdo (Permite HTML)", Long: true, Value: func(n *database.News) string { return n.Body }},
}

func adminHeaderCell(col AdminColumn) g.Node {
	if col.Sortable {
		return Th(A(Href("/admin?sort="+col.Key), g.Text(col.Label)))
	}
	return Th(g.Text(col.Label))
}

func adminRow(n database.News) g.Node {
	return Tr(
		g.Group(g.Map(AdminColumns, func(col AdminColumn) g.Node {
			return Td(g.Text(col.Value(n)))
		})),
		Td(Class("actions"),
			A(Href(fmt.Sprintf("/admin/noticia/%d", n.ID)), g.Text("Editar")),
			Form(Class("inline"), Action(fmt.Sprintf("/admin/noticia/%d/delete", n.ID)), Method("post"),
				Button(Type("submit"), g.Text("Excluir")),
			),
		),
	)
}

func AdminIndexPage(props LayoutProps, news []database.News) g.Node {
	props.Title = "Painel"
	return Page(props,
		H1(g.Text("Notícias (Cards)")),
		P(A(Class("button"), Href("/admin/noticia/new"), g.Text("Nova notícia"))),
		Table(Class("admin-table"),
			THead(Tr(
				g.Group(g.Map(AdminColumns, adminHeaderCell)),
				Th(g.Text("Ações")),
			)),
			TBody(g.Group(g.Map(news, adminRow))),
		),
	)
}

func adminFormInput(field AdminFormField, n *database.News) g.Node {
	value := ""
	if n != nil {
		value = field.Value(n)
	}
	input := Input(Type("text"), Name(field.Name), ID(field.Name), Value(value))
	if field.Long {
		input = Textarea(Name(field.Name), ID(field.Name), Rows("12"), g.Text(value))
	}
	return Div(Class("field"),
		Label(For(field.Name), g.Text(field.Label)),
		input,
	)
}

// AdminFormPage renders the create form when n is nil and the edit form
// otherwise. fieldErr names a field rejected by validation.
func AdminFormPage(props LayoutProps, n *database.News, action string, fieldErr string) g.Node {
	heading := "Editar notícia"
	if action == "/admin/noticia/new" {
		heading = "Nova notícia"
	}
	props.Title = heading
	return Page(props,
		H1(g.Text(heading)),
		g.If(fieldErr != "",
			Div(Class("flash flash-erro"), g.Textf("O campo %q é obrigatório.", fieldErr)),
		),
		Form(Class("form"), Action(action), Method("post"),
			g.Group(g.Map(AdminFormFields, func(field AdminFormField) g.Node {
				return adminFormInput(field, n)
			})),
			Button(Type("submit"), g.Text("Salvar")),
		),
	)
}
