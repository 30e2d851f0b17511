package airtable

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client defines the interface for interacting with Airtable API
type Client interface {
	CreateRecord(ctx context.Context, table string, fields map[string]any) error
}

type clientImpl struct {
	http   *resty.Client
	baseID string
	logger *zap.Logger
}

type record struct {
	Fields map[string]any `json:"fields"`
}

type createRequest struct {
	Records []record `json:"records"`
}

// NewClient creates a new Airtable client
func NewClient(baseURL, apiKey, baseID string, timeout time.Duration, logger *zap.Logger) Client {
	return &clientImpl{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetAuthToken(apiKey).
			SetHeader("Content-Type", "application/json"),
		baseID: baseID,
		logger: logger,
	}
}

func (c *clientImpl) CreateRecord(ctx context.Context, table string, fields map[string]any) error {
	path := fmt.Sprintf("/v0/%s/%s", url.PathEscape(c.baseID), url.PathEscape(table))

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createRequest{Records: []record{{Fields: fields}}}).
		Post(path)
	if err != nil {
		return fmt.Errorf("error creating Airtable record: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("error from Airtable API: %s: %.256s", resp.Status(), resp.String())
	}

	c.logger.Debug("created Airtable record", zap.String("table", table))
	return nil
}
