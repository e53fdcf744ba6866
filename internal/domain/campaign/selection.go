package campaign

import (
	"maps"
	"slices"

	"billboard-booking/internal/domain/schedule"
)

// DateSelection is the chosen hours for one date plus the date's grid once it
// has been resolved.
type DateSelection struct {
	date  schedule.Date
	hours []int
	grid  *schedule.Grid
}

func NewDateSelection(date schedule.Date) DateSelection {
	return DateSelection{date: date}
}

func RestoreDateSelection(date schedule.Date, hours []int, grid *schedule.Grid) DateSelection {
	return DateSelection{date: date, hours: schedule.NormalizeHours(hours), grid: grid}
}

func (s DateSelection) Date() schedule.Date { return s.date }
func (s DateSelection) Hours() []int        { return slices.Clone(s.hours) }
func (s DateSelection) Resolved() bool      { return s.grid != nil }

// Grid returns the resolved grid, if any.
func (s DateSelection) Grid() (schedule.Grid, bool) {
	if s.grid == nil {
		return schedule.Grid{}, false
	}
	return *s.grid, true
}

func (s DateSelection) HasHour(hour int) bool {
	_, found := slices.BinarySearch(s.hours, hour)
	return found
}

func (s DateSelection) Intervals() []schedule.Interval {
	return schedule.Merge(s.hours)
}

// withGrid attaches grid and drops every selected hour it marks as booked.
func (s DateSelection) withGrid(grid schedule.Grid) DateSelection {
	kept := make([]int, 0, len(s.hours))
	for _, h := range s.hours {
		if !grid.IsBooked(h) {
			kept = append(kept, h)
		}
	}
	s.hours = kept
	s.grid = &grid
	return s
}

func (s DateSelection) withHours(hours []int) DateSelection {
	s.hours = schedule.NormalizeHours(hours)
	return s
}

func (s DateSelection) toggled(hour int) DateSelection {
	if s.HasHour(hour) {
		return s.withHours(slices.DeleteFunc(slices.Clone(s.hours), func(h int) bool { return h == hour }))
	}
	return s.withHours(append(slices.Clone(s.hours), hour))
}

// SelectionMap is an immutable collection of DateSelections keyed by date.
// Every mutator returns a new map and leaves the receiver untouched.
type SelectionMap struct {
	entries map[string]DateSelection
}

func NewSelectionMap(selections ...DateSelection) SelectionMap {
	entries := make(map[string]DateSelection, len(selections))
	for _, s := range selections {
		entries[s.date.String()] = s
	}
	return SelectionMap{entries: entries}
}

func (m SelectionMap) Len() int {
	return len(m.entries)
}

func (m SelectionMap) Get(date schedule.Date) (DateSelection, bool) {
	s, ok := m.entries[date.String()]
	return s, ok
}

func (m SelectionMap) Contains(date schedule.Date) bool {
	_, ok := m.entries[date.String()]
	return ok
}

func (m SelectionMap) With(s DateSelection) SelectionMap {
	entries := maps.Clone(m.entries)
	if entries == nil {
		entries = make(map[string]DateSelection, 1)
	}
	entries[s.date.String()] = s
	return SelectionMap{entries: entries}
}

func (m SelectionMap) Without(date schedule.Date) SelectionMap {
	entries := maps.Clone(m.entries)
	delete(entries, date.String())
	return SelectionMap{entries: entries}
}

// Dates returns the selected dates in ascending order.
func (m SelectionMap) Dates() []schedule.Date {
	keys := slices.Sorted(maps.Keys(m.entries))
	dates := make([]schedule.Date, 0, len(keys))
	for _, k := range keys {
		dates = append(dates, m.entries[k].date)
	}
	return dates
}

// Selections returns the entries ordered by date.
func (m SelectionMap) Selections() []DateSelection {
	keys := slices.Sorted(maps.Keys(m.entries))
	out := make([]DateSelection, 0, len(keys))
	for _, k := range keys {
		out = append(out, m.entries[k])
	}
	return out
}

func (m SelectionMap) TotalHours() int {
	total := 0
	for _, s := range m.entries {
		total += len(s.hours)
	}
	return total
}
