package queries

//go:generate mockgen -source=campaign.go -destination=../../../tests/mock/queries/mock_campaign.go -package=queriesmock

import (
	"context"
	"time"

	"billboard-booking/internal/domain/campaign"
	"billboard-booking/internal/domain/schedule"
	"billboard-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type CampaignView struct {
	ID          uuid.UUID
	Phase       string
	Type        string
	Resource    campaign.ResourceRef
	Selections  []SelectionView
	Summary     SummaryView
	BookingIDs  []uuid.UUID
	LastFailure *campaign.Failure
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type SelectionView struct {
	Date      string
	Hours     []int
	Intervals []schedule.Interval
	Resolved  bool
	Degraded  bool
	Slots     []schedule.TimeSlot
}

type SummaryView struct {
	TotalHours           int
	TotalAmount          int64
	ProjectedImpressions int64
}

type CampaignQueries interface {
	Get(ctx context.Context, sessionID uuid.UUID) (*CampaignView, error)
}

type campaignQueriesImpl struct {
	sessions shared.SessionRepository
}

func NewCampaignQueries(sessions shared.SessionRepository) CampaignQueries {
	return &campaignQueriesImpl{sessions: sessions}
}

func (q *campaignQueriesImpl) Get(ctx context.Context, sessionID uuid.UUID) (*CampaignView, error) {
	s, err := q.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, shared.SessionErr(err)
	}
	return NewCampaignView(s), nil
}

func NewCampaignView(s campaign.Session) *CampaignView {
	sum := s.Summary()
	view := &CampaignView{
		ID:       s.ID(),
		Phase:    string(s.Phase().Name()),
		Type:     s.Type().String(),
		Resource: s.Resource(),
		Summary: SummaryView{
			TotalHours:           sum.TotalHours,
			TotalAmount:          sum.TotalAmount,
			ProjectedImpressions: sum.ProjectedImpressions,
		},
		LastFailure: s.LastFailure(),
		CreatedAt:   s.CreatedAt(),
		UpdatedAt:   s.UpdatedAt(),
	}
	if p, ok := s.Phase().(campaign.ConfirmationPhase); ok {
		view.BookingIDs = p.BookingIDs
	}

	view.Selections = make([]SelectionView, 0, s.Selections().Len())
	for _, sel := range s.Selections().Selections() {
		sv := SelectionView{
			Date:      sel.Date().String(),
			Hours:     sel.Hours(),
			Intervals: sel.Intervals(),
			Resolved:  sel.Resolved(),
		}
		if grid, ok := sel.Grid(); ok {
			sv.Degraded = grid.Degraded()
			sv.Slots = grid.Slots()
		}
		view.Selections = append(view.Selections, sv)
	}
	return view
}
