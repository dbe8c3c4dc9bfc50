package response

import (
	"time"

	"ckforest/internal/domain/entities"
)

type BookingResponse struct {
	ID               string                  `json:"id"`
	Status           string                  `json:"status"`
	PackageID        string                  `json:"package_id"`
	PackageName      string                  `json:"package_name"`
	CheckinDate      string                  `json:"checkin_date"`
	FullName         string                  `json:"full_name"`
	Email            string                  `json:"email"`
	Phone            string                  `json:"phone"`
	Adults           int                     `json:"adults"`
	Children         int                     `json:"children"`
	HeadcountTotal   int                     `json:"headcount_total"`
	Addons           entities.AddonSelection `json:"addons"`
	NaturePreference string                  `json:"nature_preference"`
	ReceiptURL       string                  `json:"receipt_url"`
	PricePerPerson   float64                 `json:"price_per_person"`
	Subtotal         float64                 `json:"subtotal"`
	DepositDue       float64                 `json:"deposit_due"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		Status:           string(b.Status),
		PackageID:        b.PackageID,
		PackageName:      b.PackageName,
		CheckinDate:      b.CheckinDate.Format("2006-01-02"),
		FullName:         b.FullName,
		Email:            b.Email,
		Phone:            b.Phone,
		Adults:           b.Adults,
		Children:         b.Children,
		HeadcountTotal:   b.HeadcountTotal,
		Addons:           b.Addons,
		NaturePreference: b.NaturePreference,
		ReceiptURL:       b.ReceiptURL,
		PricePerPerson:   b.PricePerPerson,
		Subtotal:         b.Subtotal,
		DepositDue:       b.DepositDue,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func FromBookings(bookings []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, FromBooking(b))
	}
	return out
}
