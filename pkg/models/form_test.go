package models

import (
	"errors"
	"testing"
	"time"
)

func TestLeadFormSetLastWriteWinsAndIsolatesFields(t *testing.T) {
	t.Parallel()

	type edit struct{ field, value string }
	tests := []struct {
		name  string
		edits []edit
		want  LeadForm
	}{
		{
			name:  "single edit",
			edits: []edit{{FieldName, "Jane"}},
			want:  LeadForm{Name: "Jane"},
		},
		{
			name:  "repeated edits keep the last value",
			edits: []edit{{FieldEmail, "j"}, {FieldEmail, "jane@"}, {FieldEmail, "jane@example.com"}},
			want:  LeadForm{Email: "jane@example.com"},
		},
		{
			name: "interleaved edits",
			edits: []edit{
				{FieldName, "J"},
				{FieldPhone, "202"},
				{FieldName, "Jane Doe"},
				{FieldMessage, "Timeline: Q3"},
				{FieldInterest, "McLean estate"},
				{FieldPhone, ""},
			},
			want: LeadForm{Name: "Jane Doe", Interest: "McLean estate", Message: "Timeline: Q3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var form LeadForm
			for _, e := range tt.edits {
				before := form
				if err := form.Set(e.field, e.value); err != nil {
					t.Fatalf("Set(%q) error = %v", e.field, err)
				}
				for _, other := range Fields {
					if other == e.field {
						continue
					}
					was, _ := before.Get(other)
					now, _ := form.Get(other)
					if was != now {
						t.Fatalf("Set(%q) changed %q from %q to %q", e.field, other, was, now)
					}
				}
			}
			if form != tt.want {
				t.Fatalf("form = %+v, want %+v", form, tt.want)
			}
		})
	}
}

func TestLeadFormSetRejectsUnknownField(t *testing.T) {
	t.Parallel()

	var form LeadForm
	err := form.Set("budget", "10M")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("Set() error = %v, want ErrUnknownField", err)
	}
	if !form.IsEmpty() {
		t.Fatalf("form mutated on unknown field: %+v", form)
	}
}

func TestLeadFormMissingRequired(t *testing.T) {
	t.Parallel()

	tests := []struct {
		form LeadForm
		want []string
	}{
		{LeadForm{}, []string{FieldName, FieldEmail}},
		{LeadForm{Name: "Jane"}, []string{FieldEmail}},
		{LeadForm{Email: "jane@example.com", Name: "   "}, []string{FieldName}},
		{LeadForm{Name: "Jane", Email: "jane@example.com"}, nil},
	}
	for _, tt := range tests {
		got := tt.form.MissingRequired()
		if len(got) != len(tt.want) {
			t.Fatalf("MissingRequired(%+v) = %v, want %v", tt.form, got, tt.want)
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Fatalf("MissingRequired(%+v) = %v, want %v", tt.form, got, tt.want)
			}
		}
	}
}

func TestLeadFormToLeadStampsSourceAndTimestamp(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 14, 9, 26, 53, 589_000_000, time.FixedZone("EST", -5*3600))
	lead := LeadForm{Name: "Jane Doe", Email: "jane@example.com"}.ToLead("HLI Landing", at)

	if lead.Source != "HLI Landing" {
		t.Fatalf("source = %q, want %q", lead.Source, "HLI Landing")
	}
	if lead.TS != "2026-03-14T14:26:53.589Z" {
		t.Fatalf("ts = %q, want %q", lead.TS, "2026-03-14T14:26:53.589Z")
	}
	if lead.Name != "Jane Doe" || lead.Email != "jane@example.com" {
		t.Fatalf("lead fields not copied: %+v", lead)
	}
}

func TestLeadFormResetClearsEveryField(t *testing.T) {
	t.Parallel()

	form := LeadForm{Name: "a", Email: "b", Phone: "c", Interest: "d", Message: "e"}
	form.Reset()
	if !form.IsEmpty() {
		t.Fatalf("Reset() left %+v", form)
	}
}
