// Package stats reduces orders and users into the numbers shown on the admin panel.
package stats

import (
	"time"

	"bizbot/internal/model"
)

type Stats struct {
	TotalOrders     int
	TodayOrders     int
	PendingOrders   int
	CompletedOrders int
	TotalUsers      int
	Revenue         int64
	TodayRevenue    int64
}

// AverageCheck is revenue per order, zero when there are no orders.
func (s Stats) AverageCheck() int64 {
	if s.TotalOrders == 0 {
		return 0
	}
	return s.Revenue / int64(s.TotalOrders)
}

// Calculate aggregates orders. "Today" is the local calendar day of now.
// Orders without an amount count as zero revenue.
func Calculate(orders []model.Order, totalUsers int, now time.Time) Stats {
	today := StartOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	s := Stats{
		TotalOrders: len(orders),
		TotalUsers:  totalUsers,
	}

	for _, o := range orders {
		amount := o.AmountOrZero()
		s.Revenue += amount

		if !o.CreatedAt.Before(today) && o.CreatedAt.Before(tomorrow) {
			s.TodayOrders++
			s.TodayRevenue += amount
		}

		switch o.Status {
		case model.StatusPending:
			s.PendingOrders++
		case model.StatusCompleted:
			s.CompletedOrders++
		}
	}
	return s
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ActiveToday counts users whose last activity falls on the current local day.
func ActiveToday(users []model.User, now time.Time) int {
	today := StartOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	n := 0
	for _, u := range users {
		if !u.LastActivity.Before(today) && u.LastActivity.Before(tomorrow) {
			n++
		}
	}
	return n
}

type DayPoint struct {
	Day     time.Time
	Orders  int
	Revenue int64
}

// Daily returns one point per day for the last days days, oldest first, today last.
func Daily(orders []model.Order, now time.Time, days int) []DayPoint {
	if days <= 0 {
		return nil
	}

	today := StartOfDay(now)
	first := today.AddDate(0, 0, -(days - 1))

	points := make([]DayPoint, days)
	for i := range points {
		points[i].Day = first.AddDate(0, 0, i)
	}

	for _, o := range orders {
		created := StartOfDay(o.CreatedAt.In(now.Location()))
		if created.Before(first) || created.After(today) {
			continue
		}
		for i := range points {
			if points[i].Day.Equal(created) {
				points[i].Orders++
				points[i].Revenue += o.AmountOrZero()
				break
			}
		}
	}
	return points
}
