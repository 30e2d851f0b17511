package api

import (
	"github.com/gin-gonic/gin"

	"hli-landing/pkg/web"
)

// RouteOptions carries what RegisterRoutes needs beyond the handlers.
type RouteOptions struct {
	// SubmitLimit guards the two lead submission routes.
	SubmitLimit    gin.HandlerFunc
	LinkStylesheet bool
}

// RegisterRoutes centralizes registration of all endpoints.
func RegisterRoutes(r *gin.Engine, h *Handlers, opts RouteOptions) {
	limited := func(handler gin.HandlerFunc) []gin.HandlerFunc {
		if opts.SubmitLimit == nil {
			return []gin.HandlerFunc{handler}
		}
		return []gin.HandlerFunc{opts.SubmitLimit, handler}
	}

	r.GET("/", h.HandleLandingPage)
	r.POST("/contact", limited(h.HandleContactSubmission)...)
	r.POST("/api/leads", limited(h.HandleLeadAPI)...)
	r.GET("/health", h.HealthCheck)

	if opts.LinkStylesheet {
		r.GET(web.StylesheetPath, h.HandleStylesheet)
	}
}
