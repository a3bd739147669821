package utils

import (
	"time"

	"bikeshop-backend/internal/domain"
)

const (
	secondsPerHour = 3600
	daysPerWeek    = 7
	// Month-unit billing uses a fixed 30-day month, not calendar months.
	daysPerBilledMonth = 30
)

// wholeDays returns the number of whole days between start and end.
func wholeDays(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// ComputeDuration derives a contract's duration in the given billing unit.
//   - hour: fractional hours, seconds / 3600
//   - day: whole days, minimum one day billed
//   - week: fractional, whole days / 7
//   - month: fractional, whole days / 30
//
// Returns 0 when either timestamp is absent.
func ComputeDuration(start, end time.Time, unit domain.DurationUnit) float64 {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	switch unit {
	case domain.DurationUnitHour:
		return end.Sub(start).Seconds() / secondsPerHour
	case domain.DurationUnitDay:
		days := wholeDays(start, end)
		if days == 0 {
			days = 1
		}
		return float64(days)
	case domain.DurationUnitWeek:
		return float64(wholeDays(start, end)) / daysPerWeek
	case domain.DurationUnitMonth:
		return float64(wholeDays(start, end)) / daysPerBilledMonth
	}
	return 0
}

// ComputeTotal derives the total price from duration and unit price.
func ComputeTotal(duration, unitPrice float64) float64 {
	return duration * unitPrice
}

// Recompute refreshes the contract's derived duration and total price from
// its current start/end/duration unit/unit price. Called after every write
// that touches any of those fields.
func Recompute(c *domain.RentalContract) {
	c.Duration = ComputeDuration(c.StartDate, c.EndDate, c.DurationUnit)
	c.TotalPrice = ComputeTotal(c.Duration, c.UnitPrice)
}

// SuggestUnitPrice pre-fills a contract's unit price from the bike's own
// rental price for the chosen unit. Advisory: the caller may override the
// suggestion before saving.
func SuggestUnitPrice(bike *domain.Bike, unit domain.DurationUnit) float64 {
	if bike == nil {
		return 0
	}
	return bike.RentalPriceFor(unit)
}
