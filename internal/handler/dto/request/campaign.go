package request

import (
	"billboard-booking/internal/domain/schedule"
	"billboard-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type StartCampaignRequest struct {
	ResourceID uuid.UUID `json:"resourceId" binding:"required"`
}

type ChooseTypeRequest struct {
	Type string `json:"type" binding:"required,oneof=single-day multi-day"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

func (r SelectDateRequest) ToDate() (schedule.Date, error) {
	return schedule.ParseDate(r.Date)
}

// ApplyTemplateRequest takes either SourceDate or Hours. Without TargetDates
// the template is applied to every other selected date.
type ApplyTemplateRequest struct {
	SourceDate  *string  `json:"sourceDate" binding:"omitempty,datetime=2006-01-02"`
	Hours       []int    `json:"hours" binding:"omitempty,dive,min=0,max=23"`
	TargetDates []string `json:"targetDates" binding:"omitempty,dive,datetime=2006-01-02"`
}

func (r ApplyTemplateRequest) ToInput() (commands.TemplateInput, error) {
	in := commands.TemplateInput{Hours: r.Hours}
	if r.SourceDate != nil {
		d, err := schedule.ParseDate(*r.SourceDate)
		if err != nil {
			return in, err
		}
		in.SourceDate = &d
	}
	for _, s := range r.TargetDates {
		d, err := schedule.ParseDate(s)
		if err != nil {
			return in, err
		}
		in.TargetDates = append(in.TargetDates, d)
	}
	return in, nil
}

// Contact fields are checked by the booking domain so that every offending
// field is reported together.
type CustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type SubmitCampaignRequest struct {
	Customer CustomerRequest `json:"customer"`
	Notes    *string         `json:"notes" binding:"omitempty,max=1000"`
}

func (r SubmitCampaignRequest) ToInput() commands.SubmitInput {
	var notes string
	if r.Notes != nil {
		notes = *r.Notes
	}
	return commands.SubmitInput{
		Customer: commands.CustomerInput{
			Name:  r.Customer.Name,
			Email: r.Customer.Email,
			Phone: r.Customer.Phone,
		},
		Notes: notes,
	}
}

type BookingRangeQuery struct {
	From string `form:"from" binding:"required,datetime=2006-01-02"`
	To   string `form:"to" binding:"required,datetime=2006-01-02"`
}

func (q BookingRangeQuery) ToDates() (schedule.Date, schedule.Date, error) {
	from, err := schedule.ParseDate(q.From)
	if err != nil {
		return schedule.Date{}, schedule.Date{}, err
	}
	to, err := schedule.ParseDate(q.To)
	if err != nil {
		return schedule.Date{}, schedule.Date{}, err
	}
	return from, to, nil
}

type AvailabilityQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}

func (q AvailabilityQuery) ToDate() (schedule.Date, error) {
	return schedule.ParseDate(q.Date)
}
