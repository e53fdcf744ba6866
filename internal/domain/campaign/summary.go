package campaign

import "billboard-booking/internal/domain/schedule"

type DateSummary struct {
	Date      schedule.Date
	Hours     []int
	Intervals []schedule.Interval
	Amount    int64
}

// Summary is the priced view of a selection shown before and after submission.
type Summary struct {
	TotalHours           int
	TotalAmount          int64
	ProjectedImpressions int64
	Dates                []DateSummary
}

// Summarize prices every selected hour at the billboard's hourly rate and
// projects impressions as impressionsPerDay × hours / slots per day.
func Summarize(resource ResourceRef, selections SelectionMap) Summary {
	sum := Summary{Dates: make([]DateSummary, 0, selections.Len())}
	for _, sel := range selections.Selections() {
		hours := sel.Hours()
		ds := DateSummary{
			Date:      sel.Date(),
			Hours:     hours,
			Intervals: sel.Intervals(),
			Amount:    resource.HourlyRate * int64(len(hours)),
		}
		sum.TotalHours += len(hours)
		sum.TotalAmount += ds.Amount
		sum.Dates = append(sum.Dates, ds)
	}
	sum.ProjectedImpressions = resource.ImpressionsPerDay * int64(sum.TotalHours) / schedule.SlotsPerDay
	return sum
}

func (s Session) Summary() Summary {
	return Summarize(s.resource, s.Selections())
}
