package request

import (
	"errors"
	"strings"
	"time"

	"ckforest/internal/domain/entities"
)

var (
	ErrInvalidCheckinDate = errors.New("invalid check-in date")
)

// BookingSubmissionRequest is the multipart form posted by the booking page.
// Guest counts arrive as raw strings; the pricing rules decide how malformed
// input degrades, not the transport layer.
type BookingSubmissionRequest struct {
	PackageID        string `form:"package_id" binding:"required"`
	FullName         string `form:"full_name"`
	Email            string `form:"email"`
	Phone            string `form:"phone"`
	CheckinDate      string `form:"checkin_date"`
	Adults           string `form:"adults"`
	Children         string `form:"children"`
	Meals            bool   `form:"meals"`
	Transportation   bool   `form:"transportation"`
	TourGuide        bool   `form:"tour_guide"`
	NaturePreference string `form:"nature_preference"`
}

// ResolveCheckinDate parses the calendar date. An empty value resolves to
// nil so the gate can report the missing date itself.
func (r BookingSubmissionRequest) ResolveCheckinDate() (*time.Time, error) {
	v := strings.TrimSpace(r.CheckinDate)
	if v == "" {
		return nil, nil
	}
	d, err := time.ParseInLocation("2006-01-02", v, time.UTC)
	if err != nil {
		return nil, ErrInvalidCheckinDate
	}
	return &d, nil
}

func (r BookingSubmissionRequest) ResolveAddons() entities.AddonSelection {
	return entities.AddonSelection{
		Meals:          r.Meals,
		Transportation: r.Transportation,
		TourGuide:      r.TourGuide,
	}
}

// BookingStatusRequest moves a booking through the deposit lifecycle.
type BookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
