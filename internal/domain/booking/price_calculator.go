package booking

import "billboard-booking/internal/domain/schedule"

type PriceCalculator interface {
	CalculateTotal(hourlyRate Money, iv schedule.Interval) Money
}

// HourlyPriceCalculator charges the flat hourly rate for every booked hour.
type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

func (pc *HourlyPriceCalculator) CalculateTotal(hourlyRate Money, iv schedule.Interval) Money {
	return hourlyRate.Times(iv.Hours())
}
