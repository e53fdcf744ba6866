package schedule

import (
	"slices"

	"github.com/google/uuid"
)

// TimeSlot is one hour of a day's grid. BookingID references the booking
// occupying the hour when Booked is set.
type TimeSlot struct {
	Hour      int        `json:"hour"`
	Booked    bool       `json:"booked"`
	BookingID *uuid.UUID `json:"bookingId,omitempty"`
}

// Occupancy is an existing booking as seen by the grid builder.
type Occupancy struct {
	BookingID uuid.UUID
	Interval  Interval
}

// Grid is the derived availability of one resource on one date. Degraded marks
// a grid built without confirmed data from the booking ledger.
type Grid struct {
	date     Date
	slots    []TimeSlot
	degraded bool
}

// NewGrid marks every window hour covered by one of the occupancies as booked.
func NewGrid(date Date, occupied []Occupancy) Grid {
	slots := make([]TimeSlot, 0, SlotsPerDay)
	for _, h := range WindowHours() {
		slot := TimeSlot{Hour: h}
		for _, o := range occupied {
			if o.Interval.Contains(h) {
				id := o.BookingID
				slot.Booked = true
				slot.BookingID = &id
				break
			}
		}
		slots = append(slots, slot)
	}
	return Grid{date: date, slots: slots}
}

// FreeGrid is the optimistic grid used when availability is unknown.
func FreeGrid(date Date) Grid {
	g := NewGrid(date, nil)
	g.degraded = true
	return g
}

// BlockedGrid is the pessimistic grid used when availability is unknown.
func BlockedGrid(date Date) Grid {
	g := NewGrid(date, nil)
	for i := range g.slots {
		g.slots[i].Booked = true
	}
	g.degraded = true
	return g
}

// RestoreGrid rebuilds a grid from persisted slots.
func RestoreGrid(date Date, slots []TimeSlot, degraded bool) Grid {
	g := NewGrid(date, nil)
	for _, s := range slots {
		if !InWindow(s.Hour) {
			continue
		}
		g.slots[s.Hour-FirstHour] = s
	}
	g.degraded = degraded
	return g
}

func (g Grid) Date() Date        { return g.date }
func (g Grid) Degraded() bool    { return g.degraded }
func (g Grid) Slots() []TimeSlot { return slices.Clone(g.slots) }

func (g Grid) IsBooked(hour int) bool {
	if !InWindow(hour) || len(g.slots) == 0 {
		return true
	}
	return g.slots[hour-FirstHour].Booked
}

// AvailableHours returns the free hours in ascending order.
func (g Grid) AvailableHours() []int {
	hours := make([]int, 0, len(g.slots))
	for _, s := range g.slots {
		if !s.Booked {
			hours = append(hours, s.Hour)
		}
	}
	return hours
}

func (g Grid) BookedCount() int {
	n := 0
	for _, s := range g.slots {
		if s.Booked {
			n++
		}
	}
	return n
}
