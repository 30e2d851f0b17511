// Package submission delivers leads to the destination selected by
// configuration. Each destination is its own type carrying only the settings
// it needs; New is the single place a configured mode becomes a destination.
package submission

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"hli-landing/pkg/models"
)

// ErrSubmissionFailed is the one failure callers see, whatever the cause.
var ErrSubmissionFailed = errors.New("submission failed")

var ErrUnknownMode = errors.New("unknown submission mode")

// Mode names a destination variant in configuration.
type Mode string

const (
	ModeMailto    Mode = "mailto"
	ModeFormspree Mode = "formspree"
	ModeWebhook   Mode = "webhook"
	ModeHubSpot   Mode = "hubspot"
	ModeAirtable  Mode = "airtable"
)

// ParseMode maps a configuration string onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeMailto, ModeFormspree, ModeWebhook, ModeHubSpot, ModeAirtable:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// Receipt describes a completed delivery.
type Receipt struct {
	Mode Mode
	// NavigateTo is set when delivery is finished by the visitor's own
	// client, as with a mailto: link.
	NavigateTo string
}

// Destination delivers a lead somewhere.
type Destination interface {
	Mode() Mode
	Deliver(ctx context.Context, lead models.Lead) (Receipt, error)
}

// RequestContext carries details about the originating page that some
// destinations forward along with the lead.
type RequestContext struct {
	PageURI string
}

type requestContextKey struct{}

// WithRequestContext attaches page details to ctx.
func WithRequestContext(ctx context.Context, rc RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey{}, rc)
}

func requestContextFrom(ctx context.Context) RequestContext {
	rc, _ := ctx.Value(requestContextKey{}).(RequestContext)
	return rc
}

func failed(mode Mode, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrSubmissionFailed, mode, err)
}
