package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hli-landing/pkg/middleware"
	"hli-landing/pkg/models"
	"hli-landing/pkg/services"
	"hli-landing/pkg/submission"
	"hli-landing/pkg/web"
)

const (
	missingFieldsMessage  = "Please enter your name and email."
	unreadableFormMessage = "We couldn’t read the form. Please try again."
)

// Handlers contains all HTTP handlers for the landing page
type Handlers struct {
	submissionService services.LandingSubmissionService
	renderer          *web.Renderer
	logger            *zap.Logger
	now               func() time.Time
}

// NewHandlers creates a new Handlers instance
func NewHandlers(submissionService services.LandingSubmissionService, renderer *web.Renderer, logger *zap.Logger) *Handlers {
	return &Handlers{
		submissionService: submissionService,
		renderer:          renderer,
		logger:            logger,
		now:               time.Now,
	}
}

// HealthCheck handler for monitoring
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"mode":   h.submissionService.Mode(),
	})
}

// HandleLandingPage renders the page with an empty lead form.
func (h *Handlers) HandleLandingPage(c *gin.Context) {
	h.renderPage(c, http.StatusOK, web.FormView{})
}

// HandleStylesheet serves the stylesheet for the linked style variant.
func (h *Handlers) HandleStylesheet(c *gin.Context) {
	c.Header("Cache-Control", "public, max-age=3600")
	c.Data(http.StatusOK, "text/css; charset=utf-8", []byte(h.renderer.Stylesheet()))
}

// HandleContactSubmission takes the form-encoded lead from the page and
// answers with the page re-rendered in its post-submit state.
func (h *Handlers) HandleContactSubmission(c *gin.Context) {
	var form models.LeadForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("Error parsing lead form", zap.Error(err), zap.String("request_id", middleware.GetRequestID(c)))
		h.renderPage(c, http.StatusBadRequest, web.FormView{Fields: form, ErrorMsg: unreadableFormMessage})
		return
	}

	if missing := form.MissingRequired(); len(missing) > 0 {
		h.renderPage(c, http.StatusBadRequest, web.FormView{Fields: form, ErrorMsg: missingFieldsMessage})
		return
	}

	ctx := submission.WithRequestContext(c.Request.Context(), submission.RequestContext{PageURI: pageURI(c)})
	state, err := h.submissionService.ProcessLandingSubmission(ctx, form)
	view := web.FormView{
		Fields:     state.Fields,
		Submitting: state.Submitting,
		Submitted:  state.Submitted,
		ErrorMsg:   state.ErrorMsg,
		NavigateTo: state.Receipt.NavigateTo,
	}
	h.renderPage(c, statusFor(err), view)
}

// HandleLeadAPI is the JSON variant of HandleContactSubmission.
func (h *Handlers) HandleLeadAPI(c *gin.Context) {
	var form models.LeadForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.logger.Warn("Error parsing JSON", zap.Error(err), zap.String("request_id", middleware.GetRequestID(c)))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format"})
		return
	}

	if missing := form.MissingRequired(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields", "fields": missing})
		return
	}

	ctx := submission.WithRequestContext(c.Request.Context(), submission.RequestContext{PageURI: pageURI(c)})
	state, err := h.submissionService.ProcessLandingSubmission(ctx, form)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": state.ErrorMsg})
		return
	}

	resp := gin.H{"status": "success"}
	if state.Receipt.NavigateTo != "" {
		resp["navigate_to"] = state.Receipt.NavigateTo
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) renderPage(c *gin.Context, status int, form web.FormView) {
	view := web.View{Form: form, Year: h.now().Year()}
	c.Render(status, pageRender{renderer: h.renderer, view: view})
}

func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, submission.ErrSubmissionFailed):
		return http.StatusBadGateway
	case errors.Is(err, services.ErrSubmitInProgress):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// pageURI is the page the lead was submitted from, as reported to CRMs.
func pageURI(c *gin.Context) string {
	if ref := c.GetHeader("Referer"); ref != "" {
		return ref
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host + "/"
}
