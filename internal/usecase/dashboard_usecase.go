package usecase

import (
	"context"
	"time"

	"ckforest/internal/usecase/interfaces"
)

// DashboardStats summarises the booking pipeline for the console landing page.
type DashboardStats struct {
	NextBookingDate *time.Time `json:"next_booking_date"`
	BookingsLast30d int        `json:"bookings_last_30_days"`
	BookingsNext30d int        `json:"bookings_next_30_days"`
}

// BookingTrend is one month of booking volume.
type BookingTrend struct {
	Month    string `json:"month"`
	Bookings int    `json:"bookings"`
}

// IDashboardUseCase computes console statistics from the booking table.

type IDashboardUseCase interface {
	Stats(ctx context.Context) (DashboardStats, error)
	Trends(ctx context.Context) ([]BookingTrend, error)
}

type DashboardUseCase struct {
	repo interfaces.IBookingRepository
	now  func() time.Time
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(repo interfaces.IBookingRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

// Stats returns the next upcoming check-in plus 30-day booking counts on
// either side of now.
func (u *DashboardUseCase) Stats(ctx context.Context) (DashboardStats, error) {
	bookings, err := u.repo.ListAll(ctx)
	if err != nil {
		return DashboardStats{}, err
	}

	now := u.now().UTC()
	windowStart := now.AddDate(0, 0, -30)
	windowEnd := now.AddDate(0, 0, 30)

	var stats DashboardStats
	for _, b := range bookings {
		d := b.CheckinDate
		if !d.Before(now) {
			if stats.NextBookingDate == nil || d.Before(*stats.NextBookingDate) {
				next := d
				stats.NextBookingDate = &next
			}
			if !d.After(windowEnd) {
				stats.BookingsNext30d++
			}
		} else if !d.Before(windowStart) {
			stats.BookingsLast30d++
		}
	}
	return stats, nil
}

// Trends buckets bookings by check-in month for the last three calendar
// months (oldest first), including empty months.
func (u *DashboardUseCase) Trends(ctx context.Context) ([]BookingTrend, error) {
	bookings, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	now := u.now().UTC()
	counts := make(map[string]int)
	for _, b := range bookings {
		counts[b.CheckinDate.Format("January 2006")]++
	}

	trends := make([]BookingTrend, 0, 3)
	for i := 2; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		trends = append(trends, BookingTrend{
			Month:    month.Format("January"),
			Bookings: counts[month.Format("January 2006")],
		})
	}
	return trends, nil
}
