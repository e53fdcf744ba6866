package response

import (
	"billboard-booking/internal/domain/schedule"
	"billboard-booking/internal/usecase/commands"
	"billboard-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ResourceResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	HourlyRate        int64     `json:"hourlyRate"`
	ImpressionsPerDay int64     `json:"impressionsPerDay"`
}

type SlotResponse struct {
	Hour      int        `json:"hour"`
	Booked    bool       `json:"booked"`
	BookingID *uuid.UUID `json:"bookingId,omitempty"`
}

type IntervalResponse struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type SelectionResponse struct {
	Date      string             `json:"date"`
	Hours     []int              `json:"hours"`
	Intervals []IntervalResponse `json:"intervals"`
	Resolved  bool               `json:"resolved"`
	Degraded  bool               `json:"degraded"`
	Slots     []SlotResponse     `json:"slots,omitempty"`
}

type SummaryResponse struct {
	TotalHours           int   `json:"totalHours"`
	TotalAmount          int64 `json:"totalAmount"`
	ProjectedImpressions int64 `json:"projectedImpressions"`
}

type FailureResponse struct {
	Message    string      `json:"message"`
	Kind       string      `json:"kind"`
	CreatedIDs []uuid.UUID `json:"createdIds,omitempty"`
}

type CampaignResponse struct {
	ID          uuid.UUID           `json:"id"`
	Phase       string              `json:"phase"`
	Type        string              `json:"type,omitempty"`
	Resource    ResourceResponse    `json:"resource"`
	Selections  []SelectionResponse `json:"selections"`
	Summary     SummaryResponse     `json:"summary"`
	BookingIDs  []uuid.UUID         `json:"bookingIds,omitempty"`
	LastFailure *FailureResponse    `json:"lastFailure,omitempty"`
	CreatedAt   int64               `json:"createdAt"`
	UpdatedAt   int64               `json:"updatedAt"`
}

func FromCampaignView(v *queries.CampaignView) *CampaignResponse {
	res := &CampaignResponse{
		ID:         v.ID,
		Phase:      v.Phase,
		Type:       v.Type,
		BookingIDs: v.BookingIDs,
		CreatedAt:  v.CreatedAt.Unix(),
		UpdatedAt:  v.UpdatedAt.Unix(),
	}
	_ = copier.Copy(&res.Resource, &v.Resource)
	_ = copier.Copy(&res.Summary, &v.Summary)
	if v.LastFailure != nil {
		res.LastFailure = &FailureResponse{}
		_ = copier.Copy(res.LastFailure, v.LastFailure)
	}

	res.Selections = make([]SelectionResponse, 0, len(v.Selections))
	for _, sel := range v.Selections {
		sr := SelectionResponse{
			Date:      sel.Date,
			Hours:     sel.Hours,
			Intervals: fromIntervals(sel.Intervals),
			Resolved:  sel.Resolved,
			Degraded:  sel.Degraded,
		}
		_ = copier.Copy(&sr.Slots, &sel.Slots)
		res.Selections = append(res.Selections, sr)
	}
	return res
}

func fromIntervals(ivs []schedule.Interval) []IntervalResponse {
	out := make([]IntervalResponse, 0, len(ivs))
	for _, iv := range ivs {
		out = append(out, IntervalResponse{Start: iv.Start, End: iv.End})
	}
	return out
}

type SubmitCampaignResponse struct {
	Campaign   *CampaignResponse `json:"campaign"`
	BookingIDs []uuid.UUID       `json:"bookingIds"`
}

func FromSubmitResult(r *commands.SubmitCampaignResult) *SubmitCampaignResponse {
	return &SubmitCampaignResponse{
		Campaign:   FromCampaignView(r.Campaign),
		BookingIDs: r.BookingIDs,
	}
}

type CompensateResponse struct {
	Campaign *CampaignResponse `json:"campaign"`
	Canceled []uuid.UUID       `json:"canceled"`
}

func FromCompensateResult(r *commands.CompensateResult) *CompensateResponse {
	canceled := r.Canceled
	if canceled == nil {
		canceled = []uuid.UUID{}
	}
	return &CompensateResponse{
		Campaign: FromCampaignView(r.Campaign),
		Canceled: canceled,
	}
}
