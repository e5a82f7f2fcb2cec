package domain

import (
	"time"
)

// SeriesDays is the fixed length of a daily points series: today plus the
// six preceding days.
const SeriesDays = 7

// DailyPoints is one bucket of a daily points series.
// The bucket is keyed by its calendar date; the weekday label is derived
// from the date and exists for display only.
type DailyPoints struct {
	Date     time.Time // midnight at the start of the bucket's day
	DayLabel string    // short weekday name, e.g. "Mon"
	Points   int       // never negative
}

// DailyPointsSeries is an ordered sequence of exactly SeriesDays buckets,
// oldest first. It is derived fresh on every aggregation and never persisted.
type DailyPointsSeries []DailyPoints

// MaxPoints returns the largest bucket value in the series.
func (s DailyPointsSeries) MaxPoints() int {
	max := 0
	for _, bucket := range s {
		if bucket.Points > max {
			max = bucket.Points
		}
	}
	return max
}

// TotalPoints returns the sum of all bucket values in the series.
func (s DailyPointsSeries) TotalPoints() int {
	total := 0
	for _, bucket := range s {
		total += bucket.Points
	}
	return total
}
