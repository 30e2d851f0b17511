package web

import (
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Section anchors referenced by in-page navigation.
const (
	AnchorServices = "services"
	AnchorCoaching = "coaching"
	AnchorMarkets  = "markets"
	AnchorInsights = "insights"
	AnchorProcess  = "process"
	AnchorContact  = "contact"
)

func (r *Renderer) document(v View) g.Node {
	c := r.opts.Content
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Meta(Name("description"), Content(c.Lede)),
				TitleEl(g.Text(c.BrandName+" — Luxury Real Estate & Investment Advisory")),
				r.styles(),
				g.If(v.Form.NavigateTo != "",
					Meta(g.Attr("http-equiv", "refresh"), Content("0;url="+v.Form.NavigateTo)),
				),
			),
			Body(
				navBar(c),
				Main(
					hero(c),
					trustBar(c),
					services(c),
					coaching(c),
					markets(c),
					insights(c),
					process(c),
					testimonial(c),
					r.contact(c, v.Form),
					faq(c),
				),
				footer(c, v.Year),
			),
		),
	)
}

func (r *Renderer) styles() g.Node {
	if r.opts.LinkStylesheet {
		return Link(Rel("stylesheet"), Href(StylesheetPath))
	}
	return StyleEl(g.Raw(r.opts.Stylesheet))
}

func navBar(c PageContent) g.Node {
	return Header(Class("nav"),
		Div(Class("container nav-row"),
			Div(Class("brand"),
				Div(Class("logo"), g.Text(c.BrandInitial)),
				Div(
					Div(Class("brand-name"), g.Text(c.BrandName)),
					Div(Class("brand-regions muted"), g.Text(c.Regions)),
				),
			),
			Nav(Class("menu"),
				A(Href("#"+AnchorServices), g.Text("Services")),
				A(Href("#"+AnchorCoaching), g.Text("Coaching")),
				A(Href("#"+AnchorMarkets), g.Text("Markets")),
				A(Href("#"+AnchorProcess), g.Text("Process")),
				A(Href("#"+AnchorContact), g.Text("Contact")),
			),
			Div(Class("brand"),
				Span(Class("badge"), g.Text(c.Affiliation)),
				linkButton("#"+AnchorContact, "Start Your Strategy →", false),
			),
		),
	)
}

func hero(c PageContent) g.Node {
	return section("", "hero",
		Div(Class("grid grid-2"), Style("align-items:center"),
			Div(
				pill(c.Tagline),
				H1(Class("title"), g.Text(c.Headline)),
				P(Class("muted lede"), g.Text(c.Lede)),
				Div(Class("actions"),
					linkButton("#"+AnchorContact, "Get My Options", false),
					linkButton("#"+AnchorInsights, "See Market Signals", true),
				),
				Div(Class("stats"), g.Group(g.Map(c.Stats, stat))),
				Div(Class("assurances muted"),
					g.Group(g.Map(c.Assurances, func(a string) g.Node { return Span(g.Text(a)) })),
				),
			),
			Div(
				Div(Class("img-grid"),
					Div(Class("img-grid-inner"),
						g.Group(g.Map(c.HeroImages, func(src string) g.Node { return backgroundImage("img", src) })),
					),
				),
				card(
					Div(Class("signal"), Style("margin-top:0"),
						Div(
							Div(Class("brand-name"), g.Text(c.Signal.Title)),
							Div(Class("small muted"), g.Text(c.Signal.Detail)),
						),
						linkButton("#"+AnchorInsights, "View", false),
					),
				),
			),
		),
	)
}

func trustBar(c PageContent) g.Node {
	return section("", "",
		Div(Class("grid grid-4"),
			g.Group(g.Map(c.TrustTiles, func(t string) g.Node { return card(Span(g.Text(t))) })),
		),
	)
}

func services(c PageContent) g.Node {
	return section(AnchorServices, "",
		Div(Class("grid grid-3"),
			g.Group(g.Map(c.Services, func(s ServiceOffer) g.Node {
				return card(
					H3(g.Text(s.Title)),
					P(Class("muted"), g.Text(s.Description)),
					g.Group(g.Map(s.Points, checkItem)),
					Div(Style("margin-top:16px"), A(Class("btn btn-outline btn-block"), Href(s.Target), g.Text(s.CTA))),
				)
			})),
		),
	)
}

func coaching(c PageContent) g.Node {
	return section(AnchorCoaching, "",
		Div(Class("grid grid-2"), Style("align-items:center"),
			Div(
				H2(g.Text(c.Coaching.Heading)),
				P(Class("muted"), g.Text(c.Coaching.Body)),
				g.Group(g.Map(c.Coaching.Points, checkItem)),
				Div(Class("actions"),
					linkButton("#"+AnchorContact, "Schedule Coaching", false),
					linkButton("#"+AnchorProcess, "See Our Process", true),
				),
			),
			backgroundImage("img img-tall", c.Coaching.Image),
		),
	)
}

func markets(c PageContent) g.Node {
	return section(AnchorMarkets, "",
		Div(Class("grid grid-4"),
			g.Group(g.Map(c.Markets, func(m Market) g.Node {
				return card(
					Div(Class("nav-row"), Style("padding:0"),
						H3(g.Text(m.Title)),
						Span(Class("badge"), g.Text(m.Tag)),
					),
					P(Class("muted"), g.Text(m.Description)),
					A(Class("btn btn-outline btn-block"), Href("#"+AnchorContact), g.Text("Explore "+m.Tag)),
				)
			})),
		),
	)
}

func insights(c PageContent) g.Node {
	return section(AnchorInsights, "",
		Div(Class("grid grid-3"),
			g.Group(g.Map(c.Insights, func(i Insight) g.Node {
				return card(
					H3(g.Text(i.Title)),
					P(Class("muted"), g.Text(i.Description)),
					A(Class("btn btn-outline btn-block"), Href("#"+AnchorContact), g.Text("Request Sample")),
				)
			})),
		),
	)
}

func process(c PageContent) g.Node {
	steps := make([]g.Node, 0, len(c.Process))
	for i, step := range c.Process {
		steps = append(steps, card(
			Span(Class("dot"), g.Text(strconv.Itoa(i+1))),
			H3(Style("margin-top:12px"), g.Text(step.Title)),
			P(Class("muted"), g.Text(step.Text)),
		))
	}
	return section(AnchorProcess, "", Div(Class("grid grid-4"), g.Group(steps)))
}

func testimonial(c PageContent) g.Node {
	t := c.Testimonial
	return section("", "",
		card(
			Div(Class("grid grid-5"), Style("align-items:center"),
				Div(
					P(Class("quote"), g.Text(t.Quote)),
					P(Class("small muted"), g.Text(t.Attribution)),
				),
				Div(Class("card"),
					Div(Class("p"),
						Div(Class("brand-name"), g.Text("Proof Points")),
						g.Group(g.Map(t.ProofPoints, checkItem)),
					),
				),
			),
		),
	)
}

func faq(c PageContent) g.Node {
	return section("", "",
		Div(Class("grid grid-3"),
			g.Group(g.Map(c.Questions, func(q Question) g.Node {
				return card(
					H3(Style("font-size:16px"), g.Text(q.Q)),
					P(Class("muted"), g.Text(q.A)),
				)
			})),
		),
	)
}

func footer(c PageContent, year int) g.Node {
	return Footer(
		Div(Class("container footer-row muted"),
			Div(g.Text(c.FooterTagline)),
			Div(Class("brand"),
				Span(g.Textf("© %d HLI", year)),
				Span(g.Text("•")),
				A(Href("#"+AnchorContact), g.Text("Privacy & Disclosures")),
			),
		),
	)
}
