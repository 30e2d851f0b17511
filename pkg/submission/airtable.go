package submission

import (
	"context"

	"hli-landing/pkg/clients/airtable"
	"hli-landing/pkg/models"
)

// Airtable appends the lead as a row in a base table.
type Airtable struct {
	BaseID string
	Table  string
	client airtable.Client
}

func NewAirtable(baseID, table string, client airtable.Client) Airtable {
	return Airtable{BaseID: baseID, Table: table, client: client}
}

func (Airtable) Mode() Mode { return ModeAirtable }

func (a Airtable) Deliver(ctx context.Context, lead models.Lead) (Receipt, error) {
	fields := map[string]any{
		"name":     lead.Name,
		"email":    lead.Email,
		"phone":    lead.Phone,
		"interest": lead.Interest,
		"message":  lead.Message,
		"source":   lead.Source,
		"ts":       lead.TS,
	}
	if err := a.client.CreateRecord(ctx, a.Table, fields); err != nil {
		return Receipt{}, failed(ModeAirtable, err)
	}
	return Receipt{Mode: ModeAirtable}, nil
}
