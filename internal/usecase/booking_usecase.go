package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"

	"ckforest/internal/domain/entities"
	"ckforest/internal/usecase/interfaces"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidBookingID     = errors.New("invalid booking id")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidBookingStatus = errors.New("invalid booking status")
)

// IBookingUseCase exposes booking reads and the management queue actions.
//
// These operations map to the customer "my bookings" view and the console
// booking queue (list everything, move a booking through its lifecycle).

type IBookingUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Booking, error)
	ListAll(ctx context.Context) ([]entities.Booking, error)
	SetStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error)
}

type BookingUseCase struct {
	repo interfaces.IBookingRepository
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository) *BookingUseCase {
	return &BookingUseCase{repo: repo}
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) ListByEmail(ctx context.Context, email string) ([]entities.Booking, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrInvalidEmail
	}

	bookings, err := u.repo.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	sortByCheckin(bookings)
	return bookings, nil
}

// ListAll returns every booking ordered by check-in date, the order the
// management queue renders them in.
func (u *BookingUseCase) ListAll(ctx context.Context) ([]entities.Booking, error) {
	bookings, err := u.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sortByCheckin(bookings)
	return bookings, nil
}

func (u *BookingUseCase) SetStatus(ctx context.Context, id string, status entities.BookingStatus) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}
	if !entities.ValidBookingStatus(status) {
		return entities.Booking{}, ErrInvalidBookingStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return updated, nil
}

func sortByCheckin(bookings []entities.Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		return bookings[i].CheckinDate.Before(bookings[j].CheckinDate)
	})
}
