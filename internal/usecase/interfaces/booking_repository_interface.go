package interfaces

import (
	"context"

	"ckforest/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// The booking-service must be able to:
//   - create a booking when the submission gate commits a draft
//   - list a customer's bookings by email (my-bookings view)
//   - list every booking for the management queue and dashboard
//   - move a booking through its status lifecycle

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Booking, error)
	ListAll(ctx context.Context) ([]entities.Booking, error)
	UpdateStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
}
