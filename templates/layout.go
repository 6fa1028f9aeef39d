package templates

import (
	"github.com/Math-Ferraz/blog-parques/constants"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// Flash is a one-shot notice pulled from the session. Kind is either
// "sucesso" or "erro" and doubles as the CSS class suffix.
type Flash struct {
	Kind    string
	Message string
}

type LayoutProps struct {
	Title    string
	LoggedIn bool
	Flashes  []Flash
}

func NavbarComponent(props LayoutProps) g.Node {
	return Nav(Class("nav"),
		Div(Class("nav-left"),
			Div(Class("brand"), A(Href("/"), g.Text(constants.APP_NAME))),
		),
		Div(Class("nav-links nav-right"),
			A(Href("/"), g.Text("Início")),
			A(Href("/atividades"), g.Text("Atividades")),
			A(Href("/sobre"), g.Text("Sobre")),
			A(Href("/participe"), g.Text("Participe")),
			g.If(props.LoggedIn,
				Div(Class("row"),
					A(Href("/admin"), g.Text("Painel")),
					A(Href("/admin_logout"), g.Text("Sair")),
				),
			),
		),
	)
}

func FooterComponent() g.Node {
	return Footer(Class("footer"),
		Small(g.Textf("%s — notícias e atividades dos parques da cidade.", constants.APP_NAME)),
	)
}

func FlashesComponent(flashes []Flash) g.Node {
	return Div(Class("flashes"),
		g.Group(g.Map(flashes, func(f Flash) g.Node {
			return Div(Class("flash flash-"+f.Kind), g.Text(f.Message))
		})),
	)
}

// Page wraps content in the shared document shell.
func Page(props LayoutProps, children ...g.Node) g.Node {
	return Doctype(
		HTML(Lang("pt-BR"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Textf("%s | %s", props.Title, constants.APP_NAME)),
				Link(Rel("stylesheet"), Href("/static/css/style.css")),
			),
			Body(
				NavbarComponent(props),
				FlashesComponent(props.Flashes),
				Main(Class("content"), g.Group(children)),
				FooterComponent(),
			),
		),
	)
}
