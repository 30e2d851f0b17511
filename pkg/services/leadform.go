package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"hli-landing/pkg/models"
	"hli-landing/pkg/submission"
)

var ErrSubmitInProgress = errors.New("a submission is already in progress")

// FailureMessage is the text shown to a visitor whose submission failed.
func FailureMessage(conciergeEmail string) string {
	return fmt.Sprintf("We couldn’t submit the form. Please try again or email %s.", conciergeEmail)
}

// FormState is a snapshot of the lead form as the page renders it.
type FormState struct {
	Fields     models.LeadForm
	Submitting bool
	Submitted  bool
	ErrorMsg   string
	Receipt    submission.Receipt
}

// LeadForm tracks one visitor's form: the five field values plus the
// submitting, error and submitted flags. It performs no validation of its own.
type LeadForm struct {
	dest       submission.Destination
	source     string
	failureMsg string
	now        func() time.Time

	mu    sync.Mutex
	state FormState
}

// LeadFormOptions configures a LeadForm.
type LeadFormOptions struct {
	Source         string
	ConciergeEmail string
	Now            func() time.Time
}

func NewLeadForm(dest submission.Destination, opts LeadFormOptions) *LeadForm {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &LeadForm{
		dest:       dest,
		source:     opts.Source,
		failureMsg: FailureMessage(opts.ConciergeEmail),
		now:        now,
	}
}

// SetField replaces one field value.
func (f *LeadForm) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.Fields.Set(name, value)
}

func (f *LeadForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Submit delivers the current field values. On success the fields are
// cleared and the form flips to submitted; on failure the fields stay as
// they were and ErrorMsg is set. The submitting flag is always cleared.
func (f *LeadForm) Submit(ctx context.Context) (err error) {
	f.mu.Lock()
	if f.state.Submitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	f.state.Submitting = true
	f.state.ErrorMsg = ""
	lead := f.state.Fields.ToLead(f.source, f.now())
	f.mu.Unlock()

	var (
		receipt   submission.Receipt
		delivered bool
	)
	defer func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.state.Submitting = false
		if !delivered {
			f.state.ErrorMsg = f.failureMsg
			return
		}
		f.state.Fields.Reset()
		f.state.Submitted = true
		f.state.Receipt = receipt
	}()

	receipt, err = f.dest.Deliver(ctx, lead)
	delivered = err == nil
	return err
}
