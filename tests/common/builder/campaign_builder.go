//go:build unit || e2e

package builder

import (
	"maps"
	"slices"
	"time"

	"billboard-booking/internal/domain/campaign"
	"billboard-booking/internal/domain/schedule"
	reqdto "billboard-booking/internal/handler/dto/request"
	"billboard-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

// CampaignBuilder builds sessions by replaying the user's steps, so every
// built session satisfies the state machine's invariants.
type CampaignBuilder struct {
	SessionID uuid.UUID
	Resource  campaign.ResourceRef
	Type      campaign.CampaignType
	// Hours maps YYYY-MM-DD to the hours selected on that date.
	Hours map[string][]int
	// Booked maps YYYY-MM-DD to intervals already booked by others.
	Booked map[string][]schedule.Interval
	Now    time.Time
}

func NewCampaignBuilder() *CampaignBuilder {
	return &CampaignBuilder{
		SessionID: uuid.New(),
		Resource:  NewResourceBuilder().BuildRef(),
		Type:      campaign.SingleDay,
		Hours: map[string][]int{
			"2030-03-14": {9, 10, 11, 14},
		},
		Booked: map[string][]schedule.Interval{},
		Now:    time.Date(2030, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *CampaignBuilder) With(mutate func(*CampaignBuilder)) *CampaignBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CampaignBuilder) BuildNew() campaign.Session {
	return campaign.NewSession(b.SessionID, b.Resource, b.Now)
}

func (b *CampaignBuilder) BuildCalendar() (campaign.Session, error) {
	s, err := b.BuildNew().ChooseType(b.Type)
	if err != nil {
		return s, err
	}

	for _, key := range slices.Sorted(maps.Keys(b.Hours)) {
		date, err := schedule.ParseDate(key)
		if err != nil {
			return s, err
		}
		if s, err = s.SelectDate(date); err != nil {
			return s, err
		}
		if s, err = s.ResolveDate(b.Grid(date)); err != nil {
			return s, err
		}
		for _, h := range b.Hours[key] {
			if s, err = s.ToggleHour(date, h); err != nil {
				return s, err
			}
		}
	}
	return s, nil
}

func (b *CampaignBuilder) BuildDetails() (campaign.Session, error) {
	s, err := b.BuildCalendar()
	if err != nil {
		return s, err
	}
	return s.ProceedToDetails()
}

// Grid is the availability the builder resolves date against.
func (b *CampaignBuilder) Grid(date schedule.Date) schedule.Grid {
	var occ []schedule.Occupancy
	for _, iv := range b.Booked[date.String()] {
		occ = append(occ, schedule.Occupancy{BookingID: uuid.New(), Interval: iv})
	}
	return schedule.NewGrid(date, occ)
}

func (b *CampaignBuilder) BuildView() (*queries.CampaignView, error) {
	s, err := b.BuildDetails()
	if err != nil {
		return nil, err
	}
	return queries.NewCampaignView(s), nil
}

func (b *CampaignBuilder) BuildSubmitRequestDTO() reqdto.SubmitCampaignRequest {
	notes := "spring launch"
	return reqdto.SubmitCampaignRequest{
		Customer: reqdto.CustomerRequest{
			Name:  "Jane Roe",
			Email: "jane@example.com",
			Phone: "555-123-4567",
		},
		Notes: &notes,
	}
}
