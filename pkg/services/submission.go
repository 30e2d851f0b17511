package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"hli-landing/pkg/models"
	"hli-landing/pkg/submission"
	"hli-landing/pkg/utils"
)

// LandingSubmissionService defines the interface for handling form submissions
type LandingSubmissionService interface {
	ProcessLandingSubmission(ctx context.Context, data models.LeadForm) (FormState, error)
	Mode() submission.Mode
}

type landingSubmissionServiceImpl struct {
	destination    submission.Destination
	source         string
	conciergeEmail string
	now            func() time.Time
	logger         *zap.Logger
}

// NewLandingSubmissionService creates a new submission service
func NewLandingSubmissionService(
	destination submission.Destination,
	source string,
	conciergeEmail string,
	logger *zap.Logger,
) LandingSubmissionService {
	return &landingSubmissionServiceImpl{
		destination:    destination,
		source:         source,
		conciergeEmail: conciergeEmail,
		now:            time.Now,
		logger:         logger,
	}
}

func (s *landingSubmissionServiceImpl) Mode() submission.Mode {
	return s.destination.Mode()
}

// ProcessLandingSubmission copies the posted values into a fresh form and
// submits it once. The returned state is what the page should render.
func (s *landingSubmissionServiceImpl) ProcessLandingSubmission(ctx context.Context, data models.LeadForm) (FormState, error) {
	form := NewLeadForm(s.destination, LeadFormOptions{
		Source:         s.source,
		ConciergeEmail: s.conciergeEmail,
		Now:            s.now,
	})
	for _, field := range models.Fields {
		value, _ := data.Get(field)
		if err := form.SetField(field, value); err != nil {
			return form.State(), err
		}
	}

	leadKey := utils.LeadKey(data.Email)
	log := s.logger.With(
		zap.String("lead", leadKey),
		zap.String("mode", string(s.destination.Mode())),
	)
	log.Info("Processing lead submission")

	start := time.Now()
	err := form.Submit(ctx)
	state := form.State()
	if err != nil {
		if errors.Is(err, submission.ErrSubmissionFailed) {
			log.Warn("Lead submission failed", zap.Error(err), zap.Duration("elapsed", time.Since(start)))
		} else {
			log.Error("Lead submission error", zap.Error(err))
		}
		return state, err
	}

	log.Info("Lead submitted", zap.Duration("elapsed", time.Since(start)))
	return state, nil
}
