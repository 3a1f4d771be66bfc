package history

import (
	"time"

	v1 "github.com/aevon-lab/grocery-tracker/internal/api/v1"
	"github.com/aevon-lab/grocery-tracker/internal/core/daterange"
)

// rollupToWeek groups date-ordered points into weeks starting on Sunday.
// Weeks without purchases are omitted.
func rollupToWeek(points []PricePoint) []WeeklyBucket {
	weeks := make([]WeeklyBucket, 0)
	if len(points) == 0 {
		return weeks
	}

	byWeek := make(map[time.Time][]PricePoint)
	for _, p := range points {
		start := daterange.Sunday(p.Date.Time)
		byWeek[start] = append(byWeek[start], p)
	}

	last := daterange.Sunday(points[len(points)-1].Date.Time)
	for week := daterange.Sunday(points[0].Date.Time); !week.After(last); week = week.AddDate(0, 0, 7) {
		bucket := byWeek[week]
		if len(bucket) == 0 {
			continue
		}

		lo, hi := bucket[0].Price, bucket[0].Price
		for _, p := range bucket[1:] {
			if p.Price.LessThan(lo) {
				lo = p.Price
			}
			if p.Price.GreaterThan(hi) {
				hi = p.Price
			}
		}

		weeks = append(weeks, WeeklyBucket{
			WeekStart: v1.NewDate(week),
			WeekEnd:   v1.NewDate(week.AddDate(0, 0, 6)),
			Min:       lo,
			Max:       hi,
			Points:    len(bucket),
		})
	}

	return weeks
}
