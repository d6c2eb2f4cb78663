package domain

import "time"

// DateOnly truncates a timestamp to midnight, keeping only the calendar date.
// Advert day-boundaries are date-based, not time-based, so every date
// comparison in the scheduling core goes through this first.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay returns true if both timestamps fall on the same calendar date
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// EndDateFor computes the last covered date of a run:
// startDate + daysPaid - 1 (the start date itself counts as day one).
func EndDateFor(startDate time.Time, daysPaid int) time.Time {
	return DateOnly(startDate).AddDate(0, 0, daysPaid-1)
}

// CoveredDates returns the dayCount consecutive calendar dates starting
// at startDate inclusive, in order
func CoveredDates(startDate time.Time, dayCount int) []time.Time {
	start := DateOnly(startDate)
	dates := make([]time.Time, 0, dayCount)
	for i := 0; i < dayCount; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

// RemainingDays computes the derived remaining-days counter:
// the number of calendar days between today and endDate, clamped at zero.
// Both sides are truncated to midnight before subtracting.
//
// RemainingDays(end, end) == 0, RemainingDays(end, end-5d) == 5,
// RemainingDays(end, end+10d) == 0.
func RemainingDays(endDate, today time.Time) int {
	// Нормализуем обе даты в UTC, чтобы переходы на летнее время
	// не давали дни по 23/25 часов
	end := asUTCDate(endDate)
	now := asUTCDate(today)

	days := int(end.Sub(now) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days
}

func asUTCDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
