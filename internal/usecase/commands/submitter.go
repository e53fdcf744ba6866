package commands

//go:generate mockgen -source=submitter.go -destination=../../../tests/mock/commands/mock_submitter.go -package=commandsmock

import (
	"context"
	"log/slog"

	"billboard-booking/internal/domain/booking"
	"billboard-booking/internal/domain/campaign"
	"billboard-booking/internal/domain/schedule"
	"billboard-booking/internal/pkg/config"
	"billboard-booking/internal/pkg/errs"
	"billboard-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CustomerInput struct {
	Name  string
	Email string
	Phone string
}

// Submission is everything needed to turn a selection into bookings.
type Submission struct {
	ResourceID uuid.UUID
	HourlyRate int64
	Selections campaign.SelectionMap
	Customer   CustomerInput
	Notes      string
}

// SubmitResult lists the bookings that exist after the call, in creation
// order. On a sequential failure it is the compensating-action log.
type SubmitResult struct {
	Created []uuid.UUID
	Drafts  []booking.Draft
}

type SubmitterOptions struct {
	RevalidateBeforeCreate bool
	AtomicBatch            bool
}

type BookingSubmitter interface {
	Submit(ctx context.Context, sub Submission) (SubmitResult, error)
	// Compensate cancels bookings created by an earlier partial submission.
	Compensate(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error)
}

type bookingSubmitterImpl struct {
	store shared.BookingStore
	calc  booking.PriceCalculator
	opts  SubmitterOptions
}

func NewBookingSubmitter(store shared.BookingStore, cfg config.Config) BookingSubmitter {
	return NewBookingSubmitterWithOptions(store, SubmitterOptions{
		RevalidateBeforeCreate: cfg.Booking.RevalidateBeforeCreate,
		AtomicBatch:            cfg.Booking.AtomicBatch,
	})
}

func NewBookingSubmitterWithOptions(store shared.BookingStore, opts SubmitterOptions) BookingSubmitter {
	return &bookingSubmitterImpl{
		store: store,
		calc:  booking.NewHourlyPriceCalculator(),
		opts:  opts,
	}
}

func (s *bookingSubmitterImpl) Submit(ctx context.Context, sub Submission) (SubmitResult, error) {
	customer, err := s.validate(sub)
	if err != nil {
		return SubmitResult{}, err
	}

	drafts, err := s.buildDrafts(sub, customer)
	if err != nil {
		return SubmitResult{}, err
	}
	result := SubmitResult{Drafts: drafts}

	if batch, ok := s.store.(shared.BatchBookingStore); ok && s.opts.AtomicBatch {
		if err := s.revalidate(ctx, sub.ResourceID, drafts); err != nil {
			return result, err
		}
		ids, err := batch.CreateBookings(ctx, drafts)
		if err != nil {
			return result, errs.Wrap(shared.WriteErr(err), "create bookings")
		}
		result.Created = ids
		return result, nil
	}

	result.Created = make([]uuid.UUID, 0, len(drafts))
	for i, d := range drafts {
		if i == 0 || !d.Date.Equal(drafts[i-1].Date) {
			if err := s.revalidate(ctx, sub.ResourceID, sameDate(drafts[i:])); err != nil {
				return result, s.abort(ctx, err, result.Created)
			}
		}

		id, err := s.store.CreateBooking(ctx, d)
		if err != nil {
			return result, s.abort(ctx, errs.Wrapf(shared.WriteErr(err), "create booking %s %s", d.Date, d.Interval), result.Created)
		}
		result.Created = append(result.Created, id)
	}
	return result, nil
}

func (s *bookingSubmitterImpl) abort(ctx context.Context, err error, created []uuid.UUID) error {
	if len(created) > 0 {
		slog.WarnContext(ctx, "submission aborted after partial success",
			"created", len(created),
			"error", err.Error())
	}
	return err
}

func (s *bookingSubmitterImpl) validate(sub Submission) (booking.Customer, error) {
	fields := map[string]string{}

	customer, err := booking.NewCustomer(sub.Customer.Name, sub.Customer.Email, sub.Customer.Phone)
	if err != nil {
		for k, v := range errs.ValidationFields(err) {
			fields[k] = v
		}
	}
	if sub.Selections.TotalHours() == 0 {
		fields[booking.FieldHours] = "select at least one hour"
	}
	if verr := errs.NewValidationError(fields); verr != nil {
		return booking.Customer{}, verr
	}
	return customer, nil
}

// buildDrafts emits one draft per merged interval, dates ascending.
func (s *bookingSubmitterImpl) buildDrafts(sub Submission, customer booking.Customer) ([]booking.Draft, error) {
	rate, err := booking.NewMoney(sub.HourlyRate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrValidation)
	}
	notes := booking.NewNote(sub.Notes)

	var drafts []booking.Draft
	for _, sel := range sub.Selections.Selections() {
		for _, iv := range sel.Intervals() {
			d, err := booking.NewDraft(s.calc, sub.ResourceID, sel.Date(), iv, rate, customer, notes)
			if err != nil {
				return nil, errs.NewValidationError(map[string]string{booking.FieldHours: err.Error()})
			}
			drafts = append(drafts, d)
		}
	}
	return drafts, nil
}

// revalidate re-reads the ledger for every date in drafts and reports the
// first draft that overlaps a confirmed booking. A failed read is not fatal:
// the store rejects overlaps on insert anyway.
func (s *bookingSubmitterImpl) revalidate(ctx context.Context, resourceID uuid.UUID, drafts []booking.Draft) error {
	if !s.opts.RevalidateBeforeCreate || len(drafts) == 0 {
		return nil
	}

	byDate := map[string][]booking.Draft{}
	var dates []schedule.Date
	for _, d := range drafts {
		key := d.Date.String()
		if _, seen := byDate[key]; !seen {
			dates = append(dates, d.Date)
		}
		byDate[key] = append(byDate[key], d)
	}

	for _, date := range dates {
		existing, err := s.store.GetBookings(ctx, resourceID, date, date)
		if err != nil {
			slog.WarnContext(ctx, "revalidation read failed, relying on store constraint",
				"resource_id", resourceID,
				"date", date.String(),
				"error", err.Error())
			continue
		}
		for _, d := range byDate[date.String()] {
			for _, b := range existing {
				if b.IsActive() && b.Date().Equal(date) && b.Interval().Overlaps(d.Interval) {
					return errs.Mark(
						errs.Newf("%s %s overlaps booking %s", date, d.Interval, b.ID()),
						errs.ErrAvailabilityConflict,
					)
				}
			}
		}
	}
	return nil
}

func (s *bookingSubmitterImpl) Compensate(ctx context.Context, ids []uuid.UUID) ([]uuid.UUID, error) {
	canceled := make([]uuid.UUID, 0, len(ids))
	var firstErr error
	for _, id := range ids {
		err := s.store.CancelBooking(ctx, id)
		if err == nil {
			canceled = append(canceled, id)
			continue
		}
		werr := shared.WriteErr(err)
		if errs.Is(werr, errs.ErrBookingNotFound) {
			// never committed
			slog.WarnContext(ctx, "compensation skipped unknown booking", "booking_id", id)
			continue
		}
		if firstErr == nil {
			firstErr = errs.Wrapf(werr, "cancel booking %s", id)
		}
	}
	return canceled, firstErr
}

func sameDate(drafts []booking.Draft) []booking.Draft {
	n := 1
	for n < len(drafts) && drafts[n].Date.Equal(drafts[0].Date) {
		n++
	}
	return drafts[:n]
}
