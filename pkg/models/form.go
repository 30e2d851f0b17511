package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Field names as they appear in the lead form markup and in the JSON payload.
const (
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
	FieldInterest = "interest"
	FieldMessage  = "message"
)

// TimestampLayout matches the UTC millisecond format browsers emit for Date.toISOString.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

var ErrUnknownField = errors.New("unknown lead form field")

// Fields lists the editable form fields in display order.
var Fields = []string{FieldName, FieldEmail, FieldPhone, FieldInterest, FieldMessage}

// RequiredFields must be non-empty before a submission is attempted.
var RequiredFields = []string{FieldName, FieldEmail}

// LeadForm represents the data structure coming from the landing page form
type LeadForm struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Phone    string `json:"phone" form:"phone"`
	Interest string `json:"interest" form:"interest"`
	Message  string `json:"message" form:"message"`
}

// Lead is the record handed to a submission destination.
type Lead struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Interest string `json:"interest"`
	Message  string `json:"message"`
	Source   string `json:"source"`
	TS       string `json:"ts"`
}

// Set replaces a single field and leaves the others untouched.
func (f *LeadForm) Set(field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldEmail:
		f.Email = value
	case FieldPhone:
		f.Phone = value
	case FieldInterest:
		f.Interest = value
	case FieldMessage:
		f.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Get returns the current value of a field.
func (f LeadForm) Get(field string) (string, error) {
	switch field {
	case FieldName:
		return f.Name, nil
	case FieldEmail:
		return f.Email, nil
	case FieldPhone:
		return f.Phone, nil
	case FieldInterest:
		return f.Interest, nil
	case FieldMessage:
		return f.Message, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
}

func (f *LeadForm) Reset() {
	*f = LeadForm{}
}

func (f LeadForm) IsEmpty() bool {
	return f == LeadForm{}
}

// MissingRequired reports the required fields that are blank.
func (f LeadForm) MissingRequired() []string {
	var missing []string
	for _, field := range RequiredFields {
		v, _ := f.Get(field)
		if strings.TrimSpace(v) == "" {
			missing = append(missing, field)
		}
	}
	return missing
}

// ToLead stamps the form values with a source label and submission time.
func (f LeadForm) ToLead(source string, at time.Time) Lead {
	return Lead{
		Name:     f.Name,
		Email:    f.Email,
		Phone:    f.Phone,
		Interest: f.Interest,
		Message:  f.Message,
		Source:   source,
		TS:       at.UTC().Format(TimestampLayout),
	}
}
