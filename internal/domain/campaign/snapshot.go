package campaign

import (
	"time"

	"github.com/google/uuid"

	"billboard-booking/internal/domain/schedule"
)

// Snapshot is the serialisable form of a Session, used by session stores.
type Snapshot struct {
	ID          uuid.UUID           `json:"id"`
	Resource    ResourceRef         `json:"resource"`
	Phase       PhaseName           `json:"phase"`
	Type        CampaignType        `json:"type,omitempty"`
	Selections  []SelectionSnapshot `json:"selections,omitempty"`
	BookingIDs  []uuid.UUID         `json:"bookingIds,omitempty"`
	LastFailure *Failure            `json:"lastFailure,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

type SelectionSnapshot struct {
	Date     schedule.Date       `json:"date"`
	Hours    []int               `json:"hours"`
	Slots    []schedule.TimeSlot `json:"slots,omitempty"`
	Degraded bool                `json:"degraded,omitempty"`
}

func (s Session) Snapshot() Snapshot {
	snap := Snapshot{
		ID:          s.id,
		Resource:    s.resource,
		Phase:       s.phase.Name(),
		Type:        s.Type(),
		LastFailure: s.lastFailure,
		CreatedAt:   s.createdAt,
		UpdatedAt:   s.updatedAt,
	}
	if p, ok := s.phase.(ConfirmationPhase); ok {
		snap.BookingIDs = p.BookingIDs
	}
	for _, sel := range s.Selections().Selections() {
		ss := SelectionSnapshot{Date: sel.Date(), Hours: sel.Hours()}
		if grid, ok := sel.Grid(); ok {
			ss.Slots = grid.Slots()
			ss.Degraded = grid.Degraded()
		}
		snap.Selections = append(snap.Selections, ss)
	}
	return snap
}

// FromSnapshot rebuilds a Session. Unknown phases fall back to the campaign
// type choice.
func FromSnapshot(snap Snapshot) Session {
	selections := make([]DateSelection, 0, len(snap.Selections))
	for _, ss := range snap.Selections {
		var grid *schedule.Grid
		if len(ss.Slots) > 0 {
			g := schedule.RestoreGrid(ss.Date, ss.Slots, ss.Degraded)
			grid = &g
		}
		selections = append(selections, RestoreDateSelection(ss.Date, ss.Hours, grid))
	}
	m := NewSelectionMap(selections...)

	var phase Phase
	switch snap.Phase {
	case PhaseCalendar:
		phase = CalendarPhase{Type: snap.Type, Selections: m}
	case PhaseDetails:
		phase = DetailsPhase{Type: snap.Type, Selections: m}
	case PhaseConfirmation:
		phase = ConfirmationPhase{Type: snap.Type, Selections: m, BookingIDs: snap.BookingIDs}
	default:
		phase = CampaignTypePhase{}
	}
	return ReconstructSession(snap.ID, snap.Resource, phase, snap.LastFailure, snap.CreatedAt, snap.UpdatedAt)
}
