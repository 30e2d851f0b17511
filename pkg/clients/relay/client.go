package relay

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Client posts a JSON document to a fixed endpoint. Form relays such as
// Formspree and generic webhooks (Apps Script, Zapier, Make) share it.
type Client interface {
	PostJSON(ctx context.Context, payload any) error
}

type clientImpl struct {
	http     *resty.Client
	endpoint string
	logger   *zap.Logger
}

// Option adjusts the outbound request for a particular relay.
type Option func(*resty.Client)

// WithAcceptJSON asks the relay for a JSON response instead of an HTML redirect.
func WithAcceptJSON() Option {
	return func(c *resty.Client) {
		c.SetHeader("Accept", "application/json")
	}
}

// NewClient creates a new relay client
func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger, opts ...Option) Client {
	httpClient := resty.New().
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	for _, opt := range opts {
		opt(httpClient)
	}
	return &clientImpl{
		http:     httpClient,
		endpoint: endpoint,
		logger:   logger,
	}
}

func (c *clientImpl) PostJSON(ctx context.Context, payload any) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.endpoint)
	if err != nil {
		return fmt.Errorf("error posting to relay: %w", err)
	}

	if !resp.IsSuccess() {
		return fmt.Errorf("error from relay: %s: %.256s", resp.Status(), resp.String())
	}

	c.logger.Debug("relay accepted payload",
		zap.String("endpoint", c.endpoint),
		zap.Int("status", resp.StatusCode()),
	)
	return nil
}
