package campaign

import (
	"slices"
	"time"

	"github.com/google/uuid"

	"billboard-booking/internal/domain/schedule"
	"billboard-booking/internal/pkg/errs"
)

type PhaseName string

const (
	PhaseCampaignType PhaseName = "campaign-type"
	PhaseCalendar     PhaseName = "calendar"
	PhaseDetails      PhaseName = "details"
	PhaseConfirmation PhaseName = "confirmation"
)

// Phase is one of CampaignTypePhase, CalendarPhase, DetailsPhase or
// ConfirmationPhase.
type Phase interface {
	Name() PhaseName
	isPhase()
}

type CampaignTypePhase struct{}

type CalendarPhase struct {
	Type       CampaignType
	Selections SelectionMap
}

type DetailsPhase struct {
	Type       CampaignType
	Selections SelectionMap
}

type ConfirmationPhase struct {
	Type       CampaignType
	Selections SelectionMap
	BookingIDs []uuid.UUID
}

func (CampaignTypePhase) Name() PhaseName { return PhaseCampaignType }
func (CalendarPhase) Name() PhaseName     { return PhaseCalendar }
func (DetailsPhase) Name() PhaseName      { return PhaseDetails }
func (ConfirmationPhase) Name() PhaseName { return PhaseConfirmation }

func (CampaignTypePhase) isPhase() {}
func (CalendarPhase) isPhase()     {}
func (DetailsPhase) isPhase()      {}
func (ConfirmationPhase) isPhase() {}

// Session is one user's booking flow for a single billboard. Every transition
// returns a new Session; the receiver is never modified.
type Session struct {
	id          uuid.UUID
	resource    ResourceRef
	phase       Phase
	lastFailure *Failure
	createdAt   time.Time
	updatedAt   time.Time
}

func NewSession(id uuid.UUID, resource ResourceRef, now time.Time) Session {
	return Session{
		id:        id,
		resource:  resource,
		phase:     CampaignTypePhase{},
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructSession(id uuid.UUID, resource ResourceRef, phase Phase, lastFailure *Failure, createdAt, updatedAt time.Time) Session {
	if phase == nil {
		phase = CampaignTypePhase{}
	}
	return Session{
		id:          id,
		resource:    resource,
		phase:       phase,
		lastFailure: lastFailure,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s Session) ID() uuid.UUID         { return s.id }
func (s Session) Resource() ResourceRef { return s.resource }
func (s Session) Phase() Phase          { return s.phase }
func (s Session) LastFailure() *Failure { return s.lastFailure }

// PendingCompensation lists bookings left behind by failed submissions that
// have not been canceled yet.
func (s Session) PendingCompensation() []uuid.UUID {
	if s.lastFailure == nil {
		return nil
	}
	return slices.Clone(s.lastFailure.CreatedIDs)
}
func (s Session) CreatedAt() time.Time  { return s.createdAt }
func (s Session) UpdatedAt() time.Time  { return s.updatedAt }

// Type is empty until a campaign type has been chosen.
func (s Session) Type() CampaignType {
	switch p := s.phase.(type) {
	case CalendarPhase:
		return p.Type
	case DetailsPhase:
		return p.Type
	case ConfirmationPhase:
		return p.Type
	}
	return ""
}

func (s Session) Selections() SelectionMap {
	switch p := s.phase.(type) {
	case CalendarPhase:
		return p.Selections
	case DetailsPhase:
		return p.Selections
	case ConfirmationPhase:
		return p.Selections
	}
	return SelectionMap{}
}

func (s Session) Touch(now time.Time) Session {
	s.updatedAt = now
	return s
}

func (s Session) with(phase Phase) Session {
	s.phase = phase
	return s
}

func invalidTransition(from PhaseName, action string) error {
	return errs.Wrapf(errs.ErrInvalidTransition, "cannot %s in phase %s", action, from)
}

func pendingCompensation(from PhaseName, action string, ids []uuid.UUID) error {
	return errs.Wrapf(errs.ErrInvalidTransition, "cannot %s in phase %s: %d bookings from a failed submission must be compensated first", action, from, len(ids))
}

// ChooseType starts a fresh calendar. Any previous selection is discarded.
// It is refused while a failed submission still has bookings to compensate.
func (s Session) ChooseType(t CampaignType) (Session, error) {
	if _, err := ParseCampaignType(string(t)); err != nil {
		return s, errs.NewValidationError(map[string]string{"type": err.Error()})
	}
	if pending := s.PendingCompensation(); len(pending) > 0 {
		return s, pendingCompensation(s.phase.Name(), "choose campaign type", pending)
	}
	switch s.phase.(type) {
	case CampaignTypePhase, CalendarPhase, DetailsPhase:
		s.lastFailure = nil
		return s.with(CalendarPhase{Type: t, Selections: NewSelectionMap()}), nil
	}
	return s, invalidTransition(s.phase.Name(), "choose campaign type")
}

// SelectDate replaces the selection for single-day campaigns and toggles
// membership of date for multi-day campaigns. A newly added date starts
// unresolved.
func (s Session) SelectDate(date schedule.Date) (Session, error) {
	p, ok := s.phase.(CalendarPhase)
	if !ok {
		return s, invalidTransition(s.phase.Name(), "select a date")
	}
	if date.IsZero() {
		return s, errs.NewValidationError(map[string]string{"date": schedule.ErrInvalidDate.Error()})
	}

	switch p.Type {
	case SingleDay:
		p.Selections = NewSelectionMap(NewDateSelection(date))
	default:
		if p.Selections.Contains(date) {
			p.Selections = p.Selections.Without(date)
		} else {
			p.Selections = p.Selections.With(NewDateSelection(date))
		}
	}
	return s.with(p), nil
}

// ResolveDate attaches a freshly resolved grid. A grid for a date that has
// since been removed is ignored.
func (s Session) ResolveDate(grid schedule.Grid) (Session, error) {
	switch p := s.phase.(type) {
	case CalendarPhase:
		p.Selections = resolve(p.Selections, grid)
		return s.with(p), nil
	case DetailsPhase:
		p.Selections = resolve(p.Selections, grid)
		return s.with(p), nil
	}
	return s, invalidTransition(s.phase.Name(), "resolve availability")
}

func resolve(m SelectionMap, grid schedule.Grid) SelectionMap {
	sel, ok := m.Get(grid.Date())
	if !ok {
		return m
	}
	return m.With(sel.withGrid(grid))
}

// ToggleHour flips hour on date. Booked hours are left unselected.
func (s Session) ToggleHour(date schedule.Date, hour int) (Session, error) {
	p, ok := s.phase.(CalendarPhase)
	if !ok {
		return s, invalidTransition(s.phase.Name(), "toggle an hour")
	}
	if !schedule.InWindow(hour) {
		return s, errs.Wrapf(errs.ErrHourOutOfRange, "hour %d", hour)
	}
	sel, ok := p.Selections.Get(date)
	if !ok {
		return s, errs.Wrapf(errs.ErrDateNotSelected, "date %s", date)
	}
	grid, resolved := sel.Grid()
	if !resolved {
		return s, errs.Wrapf(errs.ErrAvailabilityPending, "date %s", date)
	}
	if grid.IsBooked(hour) {
		return s, nil
	}

	p.Selections = p.Selections.With(sel.toggled(hour))
	return s.with(p), nil
}

// ApplyTemplate copies hours onto targets. See the package level ApplyTemplate.
func (s Session) ApplyTemplate(hours []int, targets []schedule.Date) (Session, error) {
	p, ok := s.phase.(CalendarPhase)
	if !ok {
		return s, invalidTransition(s.phase.Name(), "apply a template")
	}
	p.Selections = ApplyTemplate(p.Selections, hours, targets)
	return s.with(p), nil
}

func (s Session) ApplyTemplateFrom(source schedule.Date, targets []schedule.Date) (Session, error) {
	p, ok := s.phase.(CalendarPhase)
	if !ok {
		return s, invalidTransition(s.phase.Name(), "apply a template")
	}
	selections, err := TemplateFromDate(p.Selections, source, targets)
	if err != nil {
		return s, err
	}
	p.Selections = selections
	return s.with(p), nil
}

func (s Session) ProceedToDetails() (Session, error) {
	p, ok := s.phase.(CalendarPhase)
	if !ok {
		return s, invalidTransition(s.phase.Name(), "proceed to details")
	}
	if p.Selections.TotalHours() == 0 {
		return s, errs.NewValidationError(map[string]string{"hours": "select at least one hour"})
	}
	return s.with(DetailsPhase(p)), nil
}

func (s Session) BackToCalendar() (Session, error) {
	p, ok := s.phase.(DetailsPhase)
	if !ok {
		return s, invalidTransition(s.phase.Name(), "go back to the calendar")
	}
	return s.with(CalendarPhase(p)), nil
}

// CheckSubmittable reports whether the selection may be turned into bookings.
func (s Session) CheckSubmittable() error {
	if _, ok := s.phase.(DetailsPhase); !ok {
		return invalidTransition(s.phase.Name(), "submit")
	}
	if pending := s.PendingCompensation(); len(pending) > 0 {
		return pendingCompensation(s.phase.Name(), "submit", pending)
	}
	return nil
}

// RecordFailure keeps the session in details and remembers what went wrong.
// Bookings still pending compensation from earlier failures are kept ahead of
// the ones in f.
func (s Session) RecordFailure(f Failure) (Session, error) {
	if _, ok := s.phase.(DetailsPhase); !ok {
		return s, invalidTransition(s.phase.Name(), "record a submission failure")
	}
	ids := s.PendingCompensation()
	for _, id := range f.CreatedIDs {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	f.CreatedIDs = ids
	if len(f.CreatedIDs) == 0 {
		f.CreatedIDs = nil
	}
	s.lastFailure = &f
	return s, nil
}

// Compensated replaces the pending bookings with remaining, the ones that
// could not be canceled. The failure message is kept in any phase.
func (s Session) Compensated(remaining []uuid.UUID) Session {
	if s.lastFailure == nil {
		return s
	}
	f := *s.lastFailure
	f.CreatedIDs = nil
	if len(remaining) > 0 {
		f.CreatedIDs = slices.Clone(remaining)
	}
	s.lastFailure = &f
	return s
}

// Confirm is only valid once every booking of the submission was created.
func (s Session) Confirm(bookingIDs []uuid.UUID) (Session, error) {
	p, ok := s.phase.(DetailsPhase)
	if !ok {
		return s, invalidTransition(s.phase.Name(), "confirm")
	}
	s.lastFailure = nil
	return s.with(ConfirmationPhase{Type: p.Type, Selections: p.Selections, BookingIDs: bookingIDs}), nil
}

// Reset returns to the campaign type choice with nothing selected. A failure
// with bookings still to compensate survives the reset.
func (s Session) Reset() Session {
	if len(s.PendingCompensation()) == 0 {
		s.lastFailure = nil
	}
	return s.with(CampaignTypePhase{})
}
