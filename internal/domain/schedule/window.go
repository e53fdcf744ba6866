package schedule

// Operating window of a billboard: hourly slots from 08:00 to the slot starting
// at 22:00, end exclusive at 23:00.
const (
	FirstHour   = 8
	LastHour    = 22
	ClosingHour = LastHour + 1
	SlotsPerDay = ClosingHour - FirstHour
)

func InWindow(hour int) bool {
	return hour >= FirstHour && hour <= LastHour
}

// WindowHours returns every bookable hour in ascending order.
func WindowHours() []int {
	hours := make([]int, 0, SlotsPerDay)
	for h := FirstHour; h <= LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}
