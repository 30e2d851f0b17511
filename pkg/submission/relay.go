package submission

import (
	"context"

	"hli-landing/pkg/clients/relay"
	"hli-landing/pkg/models"
)

// Formspree posts the raw lead to a Formspree form endpoint.
type Formspree struct {
	Endpoint string
	client   relay.Client
}

func NewFormspree(endpoint string, client relay.Client) Formspree {
	return Formspree{Endpoint: endpoint, client: client}
}

func (Formspree) Mode() Mode { return ModeFormspree }

func (f Formspree) Deliver(ctx context.Context, lead models.Lead) (Receipt, error) {
	if err := f.client.PostJSON(ctx, lead); err != nil {
		return Receipt{}, failed(ModeFormspree, err)
	}
	return Receipt{Mode: ModeFormspree}, nil
}

// Webhook posts the raw lead to an arbitrary endpoint.
type Webhook struct {
	Endpoint string
	client   relay.Client
}

func NewWebhook(endpoint string, client relay.Client) Webhook {
	return Webhook{Endpoint: endpoint, client: client}
}

func (Webhook) Mode() Mode { return ModeWebhook }

func (w Webhook) Deliver(ctx context.Context, lead models.Lead) (Receipt, error) {
	if err := w.client.PostJSON(ctx, lead); err != nil {
		return Receipt{}, failed(ModeWebhook, err)
	}
	return Receipt{Mode: ModeWebhook}, nil
}
