package services

import (
	"context"
	"time"

	"taskquest/internal/domain"
	"taskquest/internal/repository/sqlite"
)

// FallbackMaxPoints is the minimum divisor used when scaling bar heights, so
// a quiet week still renders short bars instead of full-height ones.
const FallbackMaxPoints = 10

// AggregateDailyPoints reduces a task collection to a fixed series of points
// earned per day for the trailing 7-day window ending at now, today
// inclusive, oldest bucket first.
//
// Buckets are keyed by absolute calendar date; the weekday label on each
// bucket is derived from its date for display only. Only completed tasks
// with a completion time inside the window contribute, and a task can never
// contribute negatively. The function is pure: it reads no clock and
// mutates nothing, so an empty input simply yields an all-zero series.
func AggregateDailyPoints(tasks []*domain.Task, now time.Time) domain.DailyPointsSeries {
	var points [domain.SeriesDays]int

	for _, task := range tasks {
		if task == nil || !task.IsCompleted() || task.CompletedAt == nil {
			continue
		}
		// Completion times may be stored in UTC; bucket by the caller's
		// calendar, not the stored offset's.
		completedAt := task.CompletedAt.In(now.Location())
		daysAgo := domain.DaysBetween(now, completedAt)
		if daysAgo < 0 || daysAgo >= domain.SeriesDays {
			continue
		}
		if task.PointsEarned > 0 {
			points[domain.SeriesDays-1-daysAgo] += task.PointsEarned
		}
	}

	today := domain.DateOf(now)
	series := make(domain.DailyPointsSeries, domain.SeriesDays)
	for i := range series {
		date := today.AddDate(0, 0, i-(domain.SeriesDays-1))
		series[i] = domain.DailyPoints{
			Date:     date,
			DayLabel: domain.DayLabel(date),
			Points:   points[i],
		}
	}

	return series
}

// BarFractions converts a series into per-bucket bar height fractions for
// rendering: points divided by the larger of the series maximum and
// FallbackMaxPoints, clamped to [minFraction, 1.0].
func BarFractions(series domain.DailyPointsSeries, minFraction float64) []float64 {
	scale := series.MaxPoints()
	if scale < FallbackMaxPoints {
		scale = FallbackMaxPoints
	}

	fractions := make([]float64, len(series))
	for i, bucket := range series {
		fraction := float64(bucket.Points) / float64(scale)
		if fraction < minFraction {
			fraction = minFraction
		}
		if fraction > 1.0 {
			fraction = 1.0
		}
		fractions[i] = fraction
	}

	return fractions
}

// pointsServiceImpl implements the PointsService interface
type pointsServiceImpl struct {
	repo   sqlite.Repository
	mapper *domain.Mapper
}

// NewPointsService creates a new PointsService instance
func NewPointsService(repo sqlite.Repository) PointsService {
	return &pointsServiceImpl{
		repo:   repo,
		mapper: domain.NewMapper(),
	}
}

// WeeklySeries loads the window's completed tasks and aggregates them.
func (s *pointsServiceImpl) WeeklySeries(ctx context.Context, now time.Time) (domain.DailyPointsSeries, error) {
	since := domain.DateOf(now).AddDate(0, 0, -(domain.SeriesDays - 1))

	dbTasks, err := s.repo.ListCompletedSince(ctx, since)
	if err != nil {
		return nil, err
	}

	return AggregateDailyPoints(s.mapper.Task.FromDatabaseSlice(dbTasks), now), nil
}
