package commands

//go:generate mockgen -source=campaign.go -destination=../../../tests/mock/commands/mock_campaign.go -package=commandsmock

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"billboard-booking/internal/domain/campaign"
	"billboard-booking/internal/domain/schedule"
	"billboard-booking/internal/pkg/clock"
	"billboard-booking/internal/pkg/config"
	"billboard-booking/internal/pkg/errs"
	"billboard-booking/internal/usecase/queries"
	"billboard-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// TemplateInput copies either explicit Hours or the hours of SourceDate onto
// TargetDates. An empty TargetDates list means every other selected date.
type TemplateInput struct {
	SourceDate  *schedule.Date
	Hours       []int
	TargetDates []schedule.Date
}

type SubmitInput struct {
	Customer CustomerInput
	Notes    string
}

type SubmitCampaignResult struct {
	Campaign   *queries.CampaignView
	BookingIDs []uuid.UUID
}

type CompensateResult struct {
	Campaign *queries.CampaignView
	Canceled []uuid.UUID
}

type CampaignCommands interface {
	Start(ctx context.Context, resourceID uuid.UUID) (*queries.CampaignView, error)
	ChooseType(ctx context.Context, sessionID uuid.UUID, campaignType string) (*queries.CampaignView, error)
	SelectDate(ctx context.Context, sessionID uuid.UUID, date schedule.Date) (*queries.CampaignView, error)
	ToggleHour(ctx context.Context, sessionID uuid.UUID, date schedule.Date, hour int) (*queries.CampaignView, error)
	ApplyTemplate(ctx context.Context, sessionID uuid.UUID, in TemplateInput) (*queries.CampaignView, error)
	ProceedToDetails(ctx context.Context, sessionID uuid.UUID) (*queries.CampaignView, error)
	BackToCalendar(ctx context.Context, sessionID uuid.UUID) (*queries.CampaignView, error)
	// Submit returns a non-nil result even on failure so callers can report
	// bookings created before the failure.
	Submit(ctx context.Context, sessionID uuid.UUID, in SubmitInput) (*SubmitCampaignResult, error)
	Compensate(ctx context.Context, sessionID uuid.UUID) (*CompensateResult, error)
	Close(ctx context.Context, sessionID uuid.UUID) error
}

type campaignUseCaseImpl struct {
	sessions     shared.SessionRepository
	store        shared.BookingStore
	resources    shared.ResourceReadStore
	availability queries.AvailabilityQueries
	submitter    BookingSubmitter
	events       shared.EventPublisher
	clock        clock.Clock
	probeTimeout time.Duration
}

func NewCampaignUseCase(
	sessions shared.SessionRepository,
	store shared.BookingStore,
	resources shared.ResourceReadStore,
	availability queries.AvailabilityQueries,
	submitter BookingSubmitter,
	events shared.EventPublisher,
	clock clock.Clock,
	cfg config.Config,
) CampaignCommands {
	return &campaignUseCaseImpl{
		sessions:     sessions,
		store:        store,
		resources:    resources,
		availability: availability,
		submitter:    submitter,
		events:       events,
		clock:        clock,
		probeTimeout: cfg.Booking.HealthCheckTimeout,
	}
}

func (u *campaignUseCaseImpl) Start(ctx context.Context, resourceID uuid.UUID) (*queries.CampaignView, error) {
	if err := u.probe(ctx); err != nil {
		return nil, err
	}

	res, err := u.resources.FindByID(ctx, resourceID)
	if err != nil {
		return nil, shared.ResourceErr(err)
	}

	s := campaign.NewSession(uuid.New(), campaign.ResourceRef{
		ID:                res.ID(),
		Name:              res.Name(),
		HourlyRate:        res.HourlyRate(),
		ImpressionsPerDay: res.ImpressionsPerDay(),
	}, u.clock.Now())

	if err := u.sessions.Save(ctx, s); err != nil {
		return nil, shared.SessionErr(err)
	}
	slog.InfoContext(ctx, "campaign session started", "session_id", s.ID(), "resource_id", resourceID)
	return queries.NewCampaignView(s), nil
}

func (u *campaignUseCaseImpl) probe(ctx context.Context) error {
	if u.probeTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.probeTimeout)
		defer cancel()
	}
	if err := u.store.CheckAvailabilitySystem(ctx); err != nil {
		return errs.Mark(errs.Wrap(err, "booking system health check"), errs.ErrSystemUnavailable)
	}
	return nil
}

func (u *campaignUseCaseImpl) ChooseType(ctx context.Context, sessionID uuid.UUID, campaignType string) (*queries.CampaignView, error) {
	return u.update(ctx, sessionID, func(s campaign.Session) (campaign.Session, error) {
		t, err := campaign.ParseCampaignType(campaignType)
		if err != nil {
			return s, errs.NewValidationError(map[string]string{"type": err.Error()})
		}
		return s.ChooseType(t)
	})
}

func (u *campaignUseCaseImpl) SelectDate(ctx context.Context, sessionID uuid.UUID, date schedule.Date) (*queries.CampaignView, error) {
	return u.update(ctx, sessionID, func(s campaign.Session) (campaign.Session, error) {
		if date.Before(schedule.DateOf(u.clock.Now())) {
			return s, errs.NewValidationError(map[string]string{"date": "must not be in the past"})
		}

		s, err := s.SelectDate(date)
		if err != nil {
			return s, err
		}
		if !s.Selections().Contains(date) {
			return s, nil
		}

		grid := u.availability.Resolve(ctx, s.Resource().ID, date)
		return s.ResolveDate(grid)
	})
}

func (u *campaignUseCaseImpl) ToggleHour(ctx context.Context, sessionID uuid.UUID, date schedule.Date, hour int) (*queries.CampaignView, error) {
	return u.update(ctx, sessionID, func(s campaign.Session) (campaign.Session, error) {
		return s.ToggleHour(date, hour)
	})
}

func (u *campaignUseCaseImpl) ApplyTemplate(ctx context.Context, sessionID uuid.UUID, in TemplateInput) (*queries.CampaignView, error) {
	return u.update(ctx, sessionID, func(s campaign.Session) (campaign.Session, error) {
		if in.SourceDate != nil {
			return s.ApplyTemplateFrom(*in.SourceDate, in.TargetDates)
		}
		if len(in.Hours) == 0 {
			return s, errs.NewValidationError(map[string]string{"hours": "either sourceDate or hours is required"})
		}
		targets := in.TargetDates
		if len(targets) == 0 {
			targets = s.Selections().Dates()
		}
		return s.ApplyTemplate(in.Hours, targets)
	})
}

func (u *campaignUseCaseImpl) ProceedToDetails(ctx context.Context, sessionID uuid.UUID) (*queries.CampaignView, error) {
	return u.update(ctx, sessionID, func(s campaign.Session) (campaign.Session, error) {
		return s.ProceedToDetails()
	})
}

func (u *campaignUseCaseImpl) BackToCalendar(ctx context.Context, sessionID uuid.UUID) (*queries.CampaignView, error) {
	return u.update(ctx, sessionID, func(s campaign.Session) (campaign.Session, error) {
		return s.BackToCalendar()
	})
}

func (u *campaignUseCaseImpl) Submit(ctx context.Context, sessionID uuid.UUID, in SubmitInput) (*SubmitCampaignResult, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.CheckSubmittable(); err != nil {
		// surface the bookings awaiting POST /compensate, if any
		return &SubmitCampaignResult{Campaign: queries.NewCampaignView(s), BookingIDs: s.PendingCompensation()}, err
	}

	res := s.Resource()
	result, submitErr := u.submitter.Submit(ctx, Submission{
		ResourceID: res.ID,
		HourlyRate: res.HourlyRate,
		Selections: s.Selections(),
		Customer:   in.Customer,
		Notes:      in.Notes,
	})

	if submitErr != nil {
		if errs.Is(submitErr, errs.ErrValidation) {
			return &SubmitCampaignResult{Campaign: queries.NewCampaignView(s)}, submitErr
		}
		failed, err := s.RecordFailure(campaign.Failure{
			Message:    submitErr.Error(),
			Kind:       failureKind(submitErr),
			CreatedIDs: result.Created,
		})
		if err != nil {
			return nil, err
		}
		failed = failed.Touch(u.clock.Now())
		if err := u.sessions.Save(ctx, failed); err != nil {
			slog.ErrorContext(ctx, "failed to record submission failure", "session_id", sessionID, "error", err.Error())
		}
		return &SubmitCampaignResult{Campaign: queries.NewCampaignView(failed), BookingIDs: result.Created}, submitErr
	}

	confirmed, err := s.Confirm(result.Created)
	if err != nil {
		return nil, err
	}
	confirmed = confirmed.Touch(u.clock.Now())
	if err := u.sessions.Save(ctx, confirmed); err != nil {
		// the bookings exist; only the session view is stale
		slog.ErrorContext(ctx, "failed to save confirmed session", "session_id", sessionID, "error", err.Error())
	}

	u.publishConfirmed(ctx, confirmed, in.Customer.Email, result.Created)

	return &SubmitCampaignResult{Campaign: queries.NewCampaignView(confirmed), BookingIDs: result.Created}, nil
}

// publishConfirmed is best-effort: the bookings are committed regardless.
func (u *campaignUseCaseImpl) publishConfirmed(ctx context.Context, s campaign.Session, email string, ids []uuid.UUID) {
	sum := s.Summary()
	event := shared.BookingsConfirmed{
		SessionID:     s.ID(),
		ResourceID:    s.Resource().ID,
		BookingIDs:    ids,
		CustomerEmail: email,
		TotalHours:    sum.TotalHours,
		TotalAmount:   sum.TotalAmount,
		OccurredAt:    u.clock.Now(),
	}
	if err := u.events.PublishBookingsConfirmed(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish bookings confirmed event", "session_id", s.ID(), "error", err.Error())
	}
}

func (u *campaignUseCaseImpl) Compensate(ctx context.Context, sessionID uuid.UUID) (*CompensateResult, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	pending := s.PendingCompensation()
	if len(pending) == 0 {
		return &CompensateResult{Campaign: queries.NewCampaignView(s)}, nil
	}

	canceled, cancelErr := u.submitter.Compensate(ctx, pending)

	var remaining []uuid.UUID
	if cancelErr != nil {
		for _, id := range pending {
			if !slices.Contains(canceled, id) {
				remaining = append(remaining, id)
			}
		}
	}
	next := s.Compensated(remaining).Touch(u.clock.Now())
	if err := u.sessions.Save(ctx, next); err != nil {
		return nil, shared.SessionErr(err)
	}

	slog.InfoContext(ctx, "partial submission compensated", "session_id", sessionID, "canceled", len(canceled))
	return &CompensateResult{Campaign: queries.NewCampaignView(next), Canceled: canceled}, cancelErr
}

func (u *campaignUseCaseImpl) Close(ctx context.Context, sessionID uuid.UUID) error {
	if err := u.sessions.Delete(ctx, sessionID); err != nil {
		return shared.SessionErr(err)
	}
	return nil
}

func (u *campaignUseCaseImpl) load(ctx context.Context, sessionID uuid.UUID) (campaign.Session, error) {
	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return campaign.Session{}, shared.SessionErr(err)
	}
	return s, nil
}

// update loads the session, applies fn and saves the result.
func (u *campaignUseCaseImpl) update(ctx context.Context, sessionID uuid.UUID, fn func(campaign.Session) (campaign.Session, error)) (*queries.CampaignView, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	next, err := fn(s)
	if err != nil {
		return nil, err
	}
	next = next.Touch(u.clock.Now())

	if err := u.sessions.Save(ctx, next); err != nil {
		return nil, shared.SessionErr(err)
	}
	return queries.NewCampaignView(next), nil
}

func failureKind(err error) string {
	switch {
	case errs.Is(err, errs.ErrAvailabilityConflict):
		return "availability_conflict"
	case errs.Is(err, errs.ErrPersistence):
		return "persistence"
	case errs.Is(err, errs.ErrSystemUnavailable):
		return "system_unavailable"
	default:
		return "unknown"
	}
}
