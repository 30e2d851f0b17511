package hubspot

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ContactObjectType is HubSpot's object type id for contact properties.
const ContactObjectType = "0-1"

// Field is one entry of a forms submission.
type Field struct {
	ObjectTypeID string `json:"objectTypeId"`
	Name         string `json:"name"`
	Value        string `json:"value"`
}

// Context describes the page the submission came from.
type Context struct {
	PageURI  string `json:"pageUri"`
	PageName string `json:"pageName"`
}

// Submission is the body of a forms integration submit call.
type Submission struct {
	Fields  []Field `json:"fields"`
	Context Context `json:"context"`
}

// Client defines the interface for interacting with the HubSpot Forms API
type Client interface {
	SubmitForm(ctx context.Context, submission Submission) error
}

type clientImpl struct {
	http     *resty.Client
	portalID string
	formGUID string
	logger   *zap.Logger
}

// NewClient creates a new HubSpot forms client
func NewClient(baseURL, portalID, formGUID string, timeout time.Duration, logger *zap.Logger) Client {
	return &clientImpl{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Content-Type", "application/json"),
		portalID: portalID,
		formGUID: formGUID,
		logger:   logger,
	}
}

// SubmitPath returns the integration submit path for a portal and form.
func SubmitPath(portalID, formGUID string) string {
	return fmt.Sprintf("/submissions/v3/integration/submit/%s/%s",
		url.PathEscape(portalID), url.PathEscape(formGUID))
}

func (c *clientImpl) SubmitForm(ctx context.Context, submission Submission) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(submission).
		Post(SubmitPath(c.portalID, c.formGUID))
	if err != nil {
		return fmt.Errorf("error submitting HubSpot form: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("error from HubSpot API: %s: %.256s", resp.Status(), resp.String())
	}

	c.logger.Debug("submitted HubSpot form", zap.String("form", c.formGUID))
	return nil
}
