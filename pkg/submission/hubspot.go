package submission

import (
	"context"
	"strings"

	"hli-landing/pkg/clients/hubspot"
	"hli-landing/pkg/models"
)

// HubSpot remaps the lead onto HubSpot contact properties and submits it to a
// portal form.
type HubSpot struct {
	PortalID string
	FormGUID string
	PageName string
	client   hubspot.Client
}

func NewHubSpot(portalID, formGUID, pageName string, client hubspot.Client) HubSpot {
	return HubSpot{PortalID: portalID, FormGUID: formGUID, PageName: pageName, client: client}
}

func (HubSpot) Mode() Mode { return ModeHubSpot }

func (h HubSpot) Deliver(ctx context.Context, lead models.Lead) (Receipt, error) {
	submission := HubSpotSubmission(lead, requestContextFrom(ctx).PageURI, h.PageName)
	if err := h.client.SubmitForm(ctx, submission); err != nil {
		return Receipt{}, failed(ModeHubSpot, err)
	}
	return Receipt{Mode: ModeHubSpot}, nil
}

// HubSpotSubmission maps a lead onto the forms API field list. Email and
// first name are always sent; optional properties are dropped when blank so
// HubSpot does not overwrite existing contact data with empty values.
func HubSpotSubmission(lead models.Lead, pageURI, pageName string) hubspot.Submission {
	fields := []hubspot.Field{
		contactField("email", lead.Email),
		contactField("firstname", lead.Name),
	}
	if lead.Phone != "" {
		fields = append(fields, contactField("phone", lead.Phone))
	}
	if msg := hubSpotMessage(lead); msg != "" {
		fields = append(fields, contactField("message", msg))
	}
	return hubspot.Submission{
		Fields:  fields,
		Context: hubspot.Context{PageURI: pageURI, PageName: pageName},
	}
}

func hubSpotMessage(lead models.Lead) string {
	interest := strings.TrimSpace(lead.Interest)
	message := strings.TrimSpace(lead.Message)
	switch {
	case interest != "" && message != "":
		return interest + " — " + message
	case interest != "":
		return interest
	default:
		return message
	}
}

func contactField(name, value string) hubspot.Field {
	return hubspot.Field{ObjectTypeID: hubspot.ContactObjectType, Name: name, Value: value}
}
