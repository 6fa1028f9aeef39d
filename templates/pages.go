package templates

import (
	"fmt"

	"github.com/Math-Ferraz/blog-parques/database"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

func newsCard(n database.News) g.Node {
	return Div(Class("card"),
		Img(Src("/static/img/"+n.Image), Alt(n.Title)),
		Div(Class("card-body"),
			H2(A(Href(fmt.Sprintf("/noticia/%d", n.ID)), g.Text(n.Title))),
			Span(Class("tags"), g.Text(n.Tags)),
			Small(Class("date"), g.Text(n.CreatedAt.Format("02/01/2006"))),
		),
	)
}

func HomePage(props LayoutProps, news []database.News) g.Node {
	props.Title = "Notícias"
	return Page(props,
		H1(g.Text("Notícias")),
		g.If(len(news) == 0,
			P(Class("empty"), g.Text("Nenhuma notícia publicada ainda.")),
		),
		Div(Class("cards"),
			g.Group(g.Map(news, newsCard)),
		),
	)
}

// NewsPage renders the full article. Body is stored as HTML and is
// emitted without escaping.
func NewsPage(props LayoutProps, n *database.News) g.Node {
	props.Title = n.Title
	return Page(props,
		Article(Class("noticia"),
			H1(g.Text(n.Title)),
			Small(Class("date"), g.Text(n.CreatedAt.Format("02/01/2006 15:04"))),
			Span(Class("tags"), g.Text(n.Tags)),
			Img(Src("/static/img/"+n.Image), Alt(n.Title)),
			Div(Class("conteudo"), g.Raw(n.Body)),
		),
	)
}

func AtividadesPage(props LayoutProps) g.Node {
	props.Title = "Atividades"
	return Page(props,
		H1(g.Text("Atividades")),
		P(g.Text("Os parques da cidade recebem atividades abertas ao público durante todo o ano: "+
			"caminhadas guiadas, plantio de mudas, feiras de adoção, oficinas de educação ambiental e "+
			"apresentações culturais ao ar livre.")),
		P(g.Text("A programação de cada semana é divulgada na página de notícias. Para propor uma "+
			"atividade, use o formulário da página Participe.")),
	)
}

func SobrePage(props LayoutProps) g.Node {
	props.Title = "Sobre"
	return Page(props,
		H1(g.Text("Sobre o projeto")),
		P(g.Text("O Parque Vivos é um projeto comunitário de divulgação e preservação dos parques "+
			"urbanos. Reunimos notícias, eventos e oportunidades de voluntariado em um único lugar.")),
		P(g.Text("O conteúdo é mantido por voluntários. Sugestões e correções são sempre bem-vindas "+
			"pela página Participe.")),
	)
}

func ParticipePage(props LayoutProps) g.Node {
	props.Title = "Participe"
	return Page(props,
		H1(g.Text("Participe")),
		P(g.Text("Envie sua sugestão de atividade, pauta ou melhoria para os parques.")),
		Form(Class("form"), Action("/participe"), Method("post"),
			Div(Class("field"),
				Label(For("nome"), g.Text("Nome")),
				Input(Type("text"), Name("nome"), ID("nome"), Required()),
			),
			Div(Class("field"),
				Label(For("email"), g.Text("E-mail")),
				Input(Type("email"), Name("email"), ID("email"), Required()),
			),
			Div(Class("field"),
				Label(For("mensagem"), g.Text("Mensagem")),
				Textarea(Name("mensagem"), ID("mensagem"), Rows("8"), Required()),
			),
			Button(Type("submit"), g.Text("Enviar sugestão")),
		),
	)
}

func LoginPage(props LayoutProps) g.Node {
	props.Title = "Entrar"
	return Page(props,
		H1(g.Text("Área administrativa")),
		Form(Class("form"), Action("/admin_login"), Method("post"),
			Div(Class("field"),
				Label(For("username"), g.Text("Usuário")),
				Input(Type("text"), Name("username"), ID("username"), Required()),
			),
			Div(Class("field"),
				Label(For("password"), g.Text("Senha")),
				Input(Type("password"), Name("password"), ID("password"), Required()),
			),
			Button(Type("submit"), g.Text("Entrar")),
		),
	)
}

func NotFoundPage(props LayoutProps) g.Node {
	props.Title = "Não encontrada"
	return Page(props,
		H1(g.Text("Página não encontrada")),
		P(g.Text("A notícia que você procura não existe ou foi removida.")),
		P(A(Href("/"), g.Text("Voltar para a página inicial"))),
	)
}
