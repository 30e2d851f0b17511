package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"hli-landing/pkg/models"
)

// FormView is the lead form state the contact section renders.
type FormView struct {
	Fields     models.LeadForm
	Submitting bool
	Submitted  bool
	ErrorMsg   string
	// NavigateTo is a client-side target (mailto:) to open after submitting.
	NavigateTo string
}

// disables the submit control while the browser waits on the POST
const submitGuardScript = `(function(){var f=document.querySelector('form[data-testid="lead-form"]');if(!f)return;` +
	`f.addEventListener('submit',function(){var b=f.querySelector('button[type="submit"]');if(b)b.disabled=true;` +
	`var s=document.getElementById('submitting');if(s)s.hidden=false;});})();`

func (r *Renderer) contact(c PageContent, v FormView) g.Node {
	var panel g.Node
	if v.Submitted {
		panel = thankYouPanel(v)
	} else {
		panel = r.leadForm(v)
	}

	return section(AnchorContact, "section-lg",
		Div(Class("grid grid-5"), Style("align-items:start"),
			card(
				H2(g.Text("Get Your Options")),
				P(Class("muted"), g.Text("Share a few details and we’ll send a personalized path—listings, off‑market access, investment models, and a clear next step.")),
				panel,
			),
			card(
				H3(g.Text("Concierge Contact")),
				P(Class("muted"), g.Text("Discreet, by‑appointment only.")),
				Div(Class("list"), g.Text("☎ "+c.Concierge.Phone)),
				Div(Class("list"), A(Href("mailto:"+c.Concierge.Email), g.Text("✉ "+c.Concierge.Email))),
				Div(Class("list"), g.Text("⌖ "+c.Concierge.Offices)),
				Div(Style("padding-top:8px"),
					Div(Class("brand-name"), g.Text("Compliance")),
					g.Group(g.Map(c.Concierge.Compliance, checkItem)),
				),
			),
		),
	)
}

func (r *Renderer) leadForm(v FormView) g.Node {
	f := v.Fields
	return g.Group([]g.Node{
		Form(g.Attr("data-testid", "lead-form"), Class("form"), Method("post"), Action(r.opts.FormAction),
			inputField(models.FieldName, "Full Name", "text", f.Name, "Jane Doe", true),
			inputField(models.FieldEmail, "Email", "email", f.Email, "you@example.com", true),
			inputField(models.FieldPhone, "Phone", "tel", f.Phone, "(202) 555‑0123", false),
			inputField(models.FieldInterest, "Interest", "text", f.Interest, "Georgetown condo • McLean estate • 1031", false),
			Div(Class("wide"),
				Label(For(models.FieldMessage), g.Text("Anything else?")),
				Textarea(ID(models.FieldMessage), Name(models.FieldMessage), Rows("4"),
					Placeholder("Timeline, budget, neighborhoods, goals"),
					g.Text(f.Message),
				),
			),
			Div(Class("form-row"),
				Div(Class("small muted"), g.Text("By submitting, you agree to be contacted about your inquiry.")),
				Div(Class("brand"),
					Span(ID("submitting"), Class("small"), g.If(!v.Submitting, g.Attr("hidden")), g.Text("Submitting…")),
					Button(g.Attr("data-testid", "submit-btn"), Type("submit"), Class("btn"),
						g.If(v.Submitting, Disabled()),
						g.Text("Send My Plan →"),
					),
				),
			),
			g.If(v.ErrorMsg != "", P(Class("form-error"), g.Attr("role", "alert"), g.Text(v.ErrorMsg))),
		),
		Script(g.Raw(submitGuardScript)),
	})
}

func inputField(name, label, kind, value, placeholder string, required bool) g.Node {
	return Div(
		Label(For(name), g.Text(label)),
		Input(ID(name), Name(name), Type(kind), Value(value), Placeholder(placeholder),
			g.If(required, Required()),
		),
	)
}

func thankYouPanel(v FormView) g.Node {
	return Div(Class("thanks"), g.Attr("data-testid", "thank-you"),
		P(Class("brand-name"), Style("font-size:18px"), g.Text("Thanks—your request is in.")),
		P(Class("muted"), g.Text("We’ll follow up shortly with tailored options for you.")),
		g.If(v.NavigateTo != "",
			P(Class("small"),
				g.Text("Your email app should open with the details. "),
				A(Href(v.NavigateTo), g.Text("Open it manually")),
				g.Text(" if it didn’t."),
			),
		),
		linkButton("/#"+AnchorContact, "Submit Another", false),
	)
}
