package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"ckforest/internal/domain/entities"
	mock_interfaces "ckforest/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func day(s string) time.Time {
	d, _ := time.Parse("2006-01-02", s)
	return d
}

func TestBookingUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewBookingUseCase(nil)
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(entities.Booking{}, nil)

		_, err := uc.GetByID(context.Background(), "bk-1")
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})
}

func TestBookingUseCase_ListByEmail(t *testing.T) {
	t.Run("invalid email", func(t *testing.T) {
		uc := NewBookingUseCase(nil)
		_, err := uc.ListByEmail(context.Background(), "")
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("sorted by checkin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo)

		repo.EXPECT().ListByEmail(gomock.Any(), "asha@example.com").Return([]entities.Booking{
			{ID: "b", CheckinDate: day("2026-11-01")},
			{ID: "a", CheckinDate: day("2026-10-01")},
		}, nil)

		got, err := uc.ListByEmail(context.Background(), "asha@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0].ID != "a" || got[1].ID != "b" {
			t.Fatalf("expected checkin order, got %+v", got)
		}
	})
}

func TestBookingUseCase_SetStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewBookingUseCase(nil)
		_, err := uc.SetStatus(context.Background(), "bk-1", "archived")
		if !errors.Is(err, ErrInvalidBookingStatus) {
			t.Fatalf("expected ErrInvalidBookingStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "bk-1", entities.BookingStatusConfirmed).Return(entities.Booking{}, nil)

		_, err := uc.SetStatus(context.Background(), "bk-1", entities.BookingStatusConfirmed)
		if !errors.Is(err, ErrBookingNotFound) {
			t.Fatalf("expected ErrBookingNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewBookingUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "bk-1", entities.BookingStatusDepositPaid).Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusDepositPaid}, nil)

		got, err := uc.SetStatus(context.Background(), " bk-1 ", entities.BookingStatusDepositPaid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.BookingStatusDepositPaid {
			t.Fatalf("unexpected status: %s", got.Status)
		}
	})
}
