package campaign

import (
	"slices"

	"billboard-booking/internal/domain/schedule"
	"billboard-booking/internal/pkg/errs"
)

// ApplyTemplate overwrites the hours of every resolved target date with the
// source hours that are free on that date. Unknown or unresolved targets are
// left as they are, and unavailable hours are dropped without error.
func ApplyTemplate(selections SelectionMap, sourceHours []int, targets []schedule.Date) SelectionMap {
	source := schedule.NormalizeHours(sourceHours)
	result := selections
	for _, date := range targets {
		sel, ok := result.Get(date)
		if !ok {
			continue
		}
		grid, resolved := sel.Grid()
		if !resolved {
			continue
		}
		hours := make([]int, 0, len(source))
		for _, h := range source {
			if schedule.InWindow(h) && !grid.IsBooked(h) {
				hours = append(hours, h)
			}
		}
		result = result.With(sel.withHours(hours))
	}
	return result
}

// TemplateFromDate uses the hours already chosen on source as the template.
// An empty target list means every other selected date.
func TemplateFromDate(selections SelectionMap, source schedule.Date, targets []schedule.Date) (SelectionMap, error) {
	sel, ok := selections.Get(source)
	if !ok {
		return selections, errs.Wrapf(errs.ErrDateNotSelected, "template source %s", source)
	}
	if len(targets) == 0 {
		targets = slices.DeleteFunc(selections.Dates(), func(d schedule.Date) bool { return d.Equal(source) })
	}
	return ApplyTemplate(selections, sel.Hours(), targets), nil
}
