package submission

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"hli-landing/pkg/models"
)

// Mailto hands the lead to the visitor's mail client. Nothing confirms the
// message was sent, so delivery always succeeds once the link is built.
type Mailto struct {
	Address string
}

func (Mailto) Mode() Mode { return ModeMailto }

func (m Mailto) Deliver(_ context.Context, lead models.Lead) (Receipt, error) {
	link, err := MailtoURL(m.Address, lead)
	if err != nil {
		return Receipt{}, failed(ModeMailto, err)
	}
	return Receipt{Mode: ModeMailto, NavigateTo: link}, nil
}

// MailtoURL builds mailto:<address>?subject=...&body=... with the lead
// pretty-printed as JSON in the body.
func MailtoURL(address string, lead models.Lead) (string, error) {
	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(lead); err != nil {
		return "", err
	}

	subject := "New Inquiry — " + lead.Name
	return "mailto:" + address +
		"?subject=" + queryEscape(subject) +
		"&body=" + queryEscape(strings.TrimSuffix(body.String(), "\n")), nil
}

// queryEscape percent-encodes spaces as %20; mail clients do not treat '+'
// as a space.
func queryEscape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
