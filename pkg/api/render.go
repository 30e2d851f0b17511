package api

import (
	"net/http"

	"hli-landing/pkg/web"
)

var htmlContentType = []string{"text/html; charset=utf-8"}

// pageRender lets gin write the landing page as an HTML response.
type pageRender struct {
	renderer *web.Renderer
	view     web.View
}

func (r pageRender) Render(w http.ResponseWriter) error {
	r.WriteContentType(w)
	return r.renderer.Render(w, r.view)
}

func (r pageRender) WriteContentType(w http.ResponseWriter) {
	header := w.Header()
	if val := header["Content-Type"]; len(val) == 0 {
		header["Content-Type"] = htmlContentType
	}
}
