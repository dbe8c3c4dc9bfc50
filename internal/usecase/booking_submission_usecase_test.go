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

func submittableDraft(t *testing.T) *BookingDraft {
	t.Helper()
	d := readyDraft(t)
	if err := d.SetGuestCounts("10", "2"); err != nil {
		t.Fatalf("SetGuestCounts: %v", err)
	}
	if err := d.AttachReceipt(receipt()); err != nil {
		t.Fatalf("AttachReceipt: %v", err)
	}
	return d
}

func TestBookingSubmissionUseCase_Validations(t *testing.T) {
	quotes := NewQuoteUseCase()

	t.Run("nil draft", func(t *testing.T) {
		uc := NewBookingSubmissionUseCase(nil, nil, quotes)
		_, err := uc.Submit(context.Background(), nil)
		if !errors.Is(err, ErrMissingPackage) {
			t.Fatalf("expected ErrMissingPackage, got %v", err)
		}
	})

	t.Run("missing package", func(t *testing.T) {
		uc := NewBookingSubmissionUseCase(nil, nil, quotes)
		_, err := uc.Submit(context.Background(), NewBookingDraft(entities.TourPackage{}))
		if !errors.Is(err, ErrMissingPackage) {
			t.Fatalf("expected ErrMissingPackage, got %v", err)
		}
	})

	t.Run("missing contact info", func(t *testing.T) {
		uc := NewBookingSubmissionUseCase(nil, nil, quotes)
		_, err := uc.Submit(context.Background(), NewBookingDraft(dayStay))
		if !errors.Is(err, ErrMissingContactInfo) {
			t.Fatalf("expected ErrMissingContactInfo, got %v", err)
		}
	})

	t.Run("missing checkin date", func(t *testing.T) {
		uc := NewBookingSubmissionUseCase(nil, nil, quotes)
		d := NewBookingDraft(dayStay)
		_ = d.SetContact("Asha Persaud", "asha@example.com", "5926000000")
		_, err := uc.Submit(context.Background(), d)
		if !errors.Is(err, ErrMissingCheckinDate) {
			t.Fatalf("expected ErrMissingCheckinDate, got %v", err)
		}
	})

	t.Run("missing receipt", func(t *testing.T) {
		uc := NewBookingSubmissionUseCase(nil, nil, quotes)
		d := readyDraft(t)
		_, err := uc.Submit(context.Background(), d)
		if !errors.Is(err, ErrMissingReceipt) {
			t.Fatalf("expected ErrMissingReceipt, got %v", err)
		}
		if d.State() != DraftStateReadyToUpload {
			t.Fatalf("refusal must leave draft state unchanged, got %s", d.State())
		}
	})

	t.Run("headcount below minimum", func(t *testing.T) {
		// No mocks wired: a single external call would panic the test.
		uc := NewBookingSubmissionUseCase(nil, nil, quotes)
		d := readyDraft(t)
		_ = d.SetGuestCounts("9", "0")
		if err := d.AttachReceipt(receipt()); err != nil {
			t.Fatalf("AttachReceipt: %v", err)
		}

		_, err := uc.Submit(context.Background(), d)
		if !errors.Is(err, ErrHeadcountBelowMinimum) {
			t.Fatalf("expected ErrHeadcountBelowMinimum, got %v", err)
		}
		var shortfall *HeadcountBelowMinimumError
		if !errors.As(err, &shortfall) {
			t.Fatalf("expected HeadcountBelowMinimumError, got %T", err)
		}
		if shortfall.Required != 10 || shortfall.Actual != 9 {
			t.Fatalf("unexpected shortfall %+v", shortfall)
		}
		if d.State() != DraftStateReceiptAttached {
			t.Fatalf("refusal must keep receipt attached, got %s", d.State())
		}

		// Correcting only the adult count makes the same draft submittable.
		_ = d.DetachReceipt()
		_ = d.SetGuestCounts("10", "0")
		if err := d.AttachReceipt(receipt()); err != nil {
			t.Fatalf("re-attach: %v", err)
		}
	})
}

func TestBookingSubmissionUseCase_Submit(t *testing.T) {
	quotes := NewQuoteUseCase()

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		receipts := mock_interfaces.NewMockIReceiptStore(ctrl)
		uc := NewBookingSubmissionUseCase(bookings, receipts, quotes)

		d := submittableDraft(t)

		receipts.EXPECT().Upload(gomock.Any(), "transfer.jpg", "image/jpeg", []byte("receipt-bytes")).Return("https://receipts.example/uploads/abc-transfer.jpg", nil)
		bookings.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Booking{})).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) {
				if b.ID == "" {
					t.Fatalf("expected generated booking id")
				}
				if b.Status != entities.BookingStatusPendingDeposit {
					t.Fatalf("expected pending_deposit, got %s", b.Status)
				}
				if b.Adults != 10 || b.Children != 2 || b.HeadcountTotal != 12 {
					t.Fatalf("unexpected counts: %+v", b)
				}
				if b.PricePerPerson != 5000 || b.Subtotal != 50000 || b.DepositDue != 25000 {
					t.Fatalf("unexpected money fields: %+v", b)
				}
				if b.ReceiptURL != "https://receipts.example/uploads/abc-transfer.jpg" {
					t.Fatalf("unexpected receipt url: %s", b.ReceiptURL)
				}
				if b.CheckinDate.Format("2006-01-02") != "2026-10-12" {
					t.Fatalf("unexpected checkin date: %s", b.CheckinDate)
				}
				return b, nil
			},
		)

		created, err := uc.Submit(context.Background(), d)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected created id surfaced")
		}
		if d.State() != DraftStateSubmitted {
			t.Fatalf("expected submitted, got %s", d.State())
		}

		// The draft is consumed exactly once.
		if _, err := uc.Submit(context.Background(), d); !errors.Is(err, ErrDraftAlreadySubmitted) {
			t.Fatalf("expected ErrDraftAlreadySubmitted, got %v", err)
		}
	})

	t.Run("upload fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		receipts := mock_interfaces.NewMockIReceiptStore(ctrl)
		uc := NewBookingSubmissionUseCase(bookings, receipts, quotes)

		d := submittableDraft(t)
		receipts.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket down"))

		_, err := uc.Submit(context.Background(), d)
		if !errors.Is(err, ErrReceiptUploadFailed) {
			t.Fatalf("expected ErrReceiptUploadFailed, got %v", err)
		}
		if d.State() != DraftStateFailed {
			t.Fatalf("expected failed, got %s", d.State())
		}
		if d.Receipt == nil || d.FullName == "" {
			t.Fatalf("failure must preserve the draft")
		}
	})

	t.Run("create fails then retry succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		receipts := mock_interfaces.NewMockIReceiptStore(ctrl)
		uc := NewBookingSubmissionUseCase(bookings, receipts, quotes)

		d := submittableDraft(t)

		// Retry re-runs the whole sequence, upload included.
		receipts.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://receipts.example/one", nil)
		bookings.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Booking{}, errors.New("table down"))

		_, err := uc.Submit(context.Background(), d)
		if !errors.Is(err, ErrBookingPersistFailed) {
			t.Fatalf("expected ErrBookingPersistFailed, got %v", err)
		}
		if d.State() != DraftStateFailed {
			t.Fatalf("expected failed, got %s", d.State())
		}

		receipts.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://receipts.example/two", nil)
		bookings.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Booking{})).DoAndReturn(
			func(_ context.Context, b entities.Booking) (entities.Booking, error) { return b, nil },
		)

		created, err := uc.Submit(context.Background(), d)
		if err != nil {
			t.Fatalf("retry should succeed, got %v", err)
		}
		if created.ReceiptURL != "https://receipts.example/two" {
			t.Fatalf("expected the retried upload url, got %s", created.ReceiptURL)
		}
	})

	t.Run("submit timeout surfaces as upload failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mock_interfaces.NewMockIBookingRepository(ctrl)
		receipts := mock_interfaces.NewMockIReceiptStore(ctrl)
		uc := NewBookingSubmissionUseCase(bookings, receipts, quotes, WithSubmitTimeout(10*time.Millisecond))

		d := submittableDraft(t)
		receipts.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _, _ string, _ []byte) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			},
		)

		_, err := uc.Submit(context.Background(), d)
		if !errors.Is(err, ErrReceiptUploadFailed) {
			t.Fatalf("expected ErrReceiptUploadFailed on timeout, got %v", err)
		}
	})
}
