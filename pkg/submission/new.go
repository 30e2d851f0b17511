package submission

import (
	"fmt"

	"go.uber.org/zap"

	"hli-landing/pkg/clients/airtable"
	"hli-landing/pkg/clients/hubspot"
	"hli-landing/pkg/clients/relay"
	"hli-landing/pkg/config"
)

// New builds the destination selected by cfg.SubmissionMode.
func New(cfg *config.Config, logger *zap.Logger) (Destination, error) {
	mode, err := ParseMode(cfg.SubmissionMode)
	if err != nil {
		return nil, err
	}

	switch mode {
	case ModeFormspree:
		client := relay.NewClient(cfg.FormspreeEndpoint, cfg.SubmitTimeout, logger, relay.WithAcceptJSON())
		return NewFormspree(cfg.FormspreeEndpoint, client), nil
	case ModeWebhook:
		client := relay.NewClient(cfg.WebhookEndpoint, cfg.SubmitTimeout, logger)
		return NewWebhook(cfg.WebhookEndpoint, client), nil
	case ModeHubSpot:
		client := hubspot.NewClient(cfg.HubSpotBaseURL, cfg.HubSpotPortalID, cfg.HubSpotFormGUID, cfg.SubmitTimeout, logger)
		return NewHubSpot(cfg.HubSpotPortalID, cfg.HubSpotFormGUID, cfg.HubSpotPageName, client), nil
	case ModeAirtable:
		client := airtable.NewClient(cfg.AirtableBaseURL, cfg.AirtableAPIKey, cfg.AirtableBaseID, cfg.SubmitTimeout, logger)
		return NewAirtable(cfg.AirtableBaseID, cfg.AirtableLeadsTable, client), nil
	case ModeMailto:
		return Mailto{Address: cfg.ConciergeEmail}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
}
