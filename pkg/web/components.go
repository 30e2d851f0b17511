package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func section(id, class string, children ...g.Node) g.Node {
	return Section(
		g.If(id != "", ID(id)),
		Class("section "+class),
		Div(Class("container"), g.Group(children)),
	)
}

func card(children ...g.Node) g.Node {
	return Div(Class("card"), Div(Class("p"), g.Group(children)))
}

func pill(text string) g.Node {
	return Span(Class("pill"), g.Text("✨ "+text))
}

func stat(s Stat) g.Node {
	return Div(Class("stat"),
		Div(Class("v"), g.Text(s.Value)),
		Div(Class("l"), g.Text(s.Label)),
	)
}

func checkItem(text string) g.Node {
	return Div(Class("list"),
		Span(Class("dot"), g.Attr("aria-hidden", "true"), g.Text("✓")),
		Span(g.Text(text)),
	)
}

// linkButton is a navigation control styled as a button. Anchors keep the
// lead form the only place with a submit control.
func linkButton(href, label string, outline bool) g.Node {
	class := "btn"
	if outline {
		class += " btn-outline"
	}
	return A(Class(class), Href(href), g.Text(label))
}

func backgroundImage(class, src string) g.Node {
	return Div(Class(class), Style("background-image:url('"+src+"')"))
}
