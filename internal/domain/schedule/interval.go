package schedule

import (
	"errors"
	"fmt"
	"slices"
)

var ErrInvalidInterval = errors.New("interval must satisfy start < end inside the operating window")

// Interval is a half-open [Start, End) run of hours.
type Interval struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func NewInterval(start, end int) (Interval, error) {
	if start >= end || start < FirstHour || end > ClosingHour {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{Start: start, End: end}, nil
}

func (iv Interval) Hours() int {
	return iv.End - iv.Start
}

func (iv Interval) Contains(hour int) bool {
	return hour >= iv.Start && hour < iv.End
}

func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%02d:00,%02d:00)", iv.Start, iv.End)
}

// NormalizeHours returns a sorted copy of hours without duplicates.
func NormalizeHours(hours []int) []int {
	out := slices.Clone(hours)
	slices.Sort(out)
	return slices.Compact(out)
}

// Merge coalesces hours into the minimal list of maximal contiguous intervals,
// sorted by start. Two intervals in the result are never adjacent and their
// union is exactly the input set.
func Merge(hours []int) []Interval {
	sorted := NormalizeHours(hours)
	if len(sorted) == 0 {
		return nil
	}

	intervals := make([]Interval, 0, len(sorted))
	current := Interval{Start: sorted[0], End: sorted[0] + 1}
	for _, h := range sorted[1:] {
		if h == current.End {
			current.End++
			continue
		}
		intervals = append(intervals, current)
		current = Interval{Start: h, End: h + 1}
	}
	return append(intervals, current)
}

// Flatten expands intervals back into their ascending hour list.
func Flatten(intervals []Interval) []int {
	var hours []int
	for _, iv := range intervals {
		for h := iv.Start; h < iv.End; h++ {
			hours = append(hours, h)
		}
	}
	return NormalizeHours(hours)
}
