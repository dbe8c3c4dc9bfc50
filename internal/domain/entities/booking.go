package entities

import "time"

// BookingStatus represents the deposit/confirmation lifecycle of a booking.
//
// Domain notes:
//   - A booking is created as pending_deposit once the customer uploads a
//     transfer receipt; the management queue moves it forward after the
//     deposit is verified.

type BookingStatus string

const (
	BookingStatusPendingDeposit BookingStatus = "pending_deposit"
	BookingStatusDepositPaid    BookingStatus = "deposit_paid"
	BookingStatusConfirmed      BookingStatus = "confirmed"
	BookingStatusCancelled      BookingStatus = "cancelled"
)

// ValidBookingStatus reports whether s is one of the known lifecycle states.
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case BookingStatusPendingDeposit, BookingStatusDepositPaid, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// AddonSelection carries the informational surcharge flags. They never feed
// into subtotal/deposit math; surcharges are settled manually after contact.
type AddonSelection struct {
	Meals          bool `json:"meals"`
	Transportation bool `json:"transportation"`
	TourGuide      bool `json:"tour_guide"`
}

// Booking is the booking record persisted by the service.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// Monetary representation:
//   - PricePerPerson/Subtotal/DepositDue are copied from the PriceQuote at
//     submission time; the quote itself is never persisted.

type Booking struct {
	ID               string         `json:"id"`
	Status           BookingStatus  `json:"status"`
	PackageID        string         `json:"package_id"`
	PackageName      string         `json:"package_name"`
	CheckinDate      time.Time      `json:"checkin_date"`
	FullName         string         `json:"full_name"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	Adults           int            `json:"adults"`
	Children         int            `json:"children"`
	HeadcountTotal   int            `json:"headcount_total"`
	Addons           AddonSelection `json:"addons"`
	NaturePreference string         `json:"nature_preference"`
	ReceiptURL       string         `json:"receipt_url"`
	PricePerPerson   float64        `json:"price_per_person"`
	Subtotal         float64        `json:"subtotal"`
	DepositDue       float64        `json:"deposit_due"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}
