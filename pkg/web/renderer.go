// Package web renders the landing page as a gomponents node tree.
package web

import (
	"errors"
	"fmt"
	"io"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var (
	ErrMissingStylesheet = errors.New("stylesheet is empty")
	ErrMissingContent    = errors.New("page content has no brand name")
	ErrMissingFormAction = errors.New("lead form action is empty")
)

// Options are the renderer's dependencies. They are passed in explicitly so a
// misconfigured deployment fails at startup rather than on first request.
type Options struct {
	Content        PageContent
	Stylesheet     string
	LinkStylesheet bool
	FormAction     string
}

// View is everything that varies between renders of the page.
type View struct {
	Form FormView
	Year int
}

type Renderer struct {
	opts Options
}

func NewRenderer(opts Options) (*Renderer, error) {
	if strings.TrimSpace(opts.Stylesheet) == "" {
		return nil, ErrMissingStylesheet
	}
	if opts.Content.BrandName == "" {
		return nil, ErrMissingContent
	}
	if opts.FormAction == "" {
		return nil, ErrMissingFormAction
	}
	return &Renderer{opts: opts}, nil
}

// Page returns the full landing page document.
func (r *Renderer) Page(v View) g.Node {
	return r.document(v)
}

func (r *Renderer) Render(w io.Writer, v View) error {
	if err := r.Page(v).Render(w); err != nil {
		return fmt.Errorf("render landing page: %w", err)
	}
	return nil
}

// Stylesheet returns the CSS served for the linked style variant.
func (r *Renderer) Stylesheet() string {
	return r.opts.Stylesheet
}

// Diagnostic is shown in place of the page when it cannot be rendered.
func Diagnostic(lines ...string) g.Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				TitleEl(g.Text("Page unavailable")),
			),
			Body(
				Pre(
					Style("color:#b91c1c;background:#fff3f3;border:1px solid #fecaca;padding:12px;border-radius:8px;white-space:pre-wrap;margin:24px"),
					g.Text(strings.Join(lines, "\n")),
				),
			),
		),
	)
}
