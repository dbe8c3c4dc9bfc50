package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"ckforest/internal/domain/entities"
	"ckforest/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingPackage         = errors.New("no package selected")
	ErrMissingContactInfo     = errors.New("full name, email and phone are required")
	ErrMissingCheckinDate     = errors.New("no check-in date selected")
	ErrMissingReceipt         = errors.New("no deposit receipt attached")
	ErrHeadcountBelowMinimum  = errors.New("adult headcount below package minimum")
	ErrSubmissionInProgress   = errors.New("submission already in progress")
	ErrDraftAlreadySubmitted  = errors.New("booking was already submitted")
	ErrReceiptUploadFailed    = errors.New("receipt upload failed")
	ErrBookingPersistFailed   = errors.New("booking persistence failed")
)

// HeadcountBelowMinimumError reports how far the adult count falls short of
// the package minimum. errors.Is(err, ErrHeadcountBelowMinimum) matches it.
type HeadcountBelowMinimumError struct {
	Required int
	Actual   int
}

func (e *HeadcountBelowMinimumError) Error() string {
	return fmt.Sprintf("a minimum of %d adults are required for this package (got %d)", e.Required, e.Actual)
}

func (e *HeadcountBelowMinimumError) Is(target error) bool {
	return target == ErrHeadcountBelowMinimum
}

// IBookingSubmissionUseCase encapsulates the "upload receipt then persist
// booking" behavior behind the validation gate.
//
// Requested behavior:
//   - refuse locally (no external calls) on any missing field, missing
//     receipt or headcount shortfall, leaving the draft untouched
//   - on success, exactly one upload and one create, in that order

type IBookingSubmissionUseCase interface {
	Submit(ctx context.Context, draft *BookingDraft) (entities.Booking, error)
}

type BookingSubmissionUseCase struct {
	bookings interfaces.IBookingRepository
	receipts interfaces.IReceiptStore
	quotes   IQuoteUseCase
	timeout  time.Duration
}

var _ IBookingSubmissionUseCase = (*BookingSubmissionUseCase)(nil)

type SubmissionOption func(*BookingSubmissionUseCase)

// WithSubmitTimeout bounds the upload+create sequence. Zero (the default)
// means no deadline; expiry surfaces as the failure of whichever external
// step was in flight.
func WithSubmitTimeout(d time.Duration) SubmissionOption {
	return func(u *BookingSubmissionUseCase) {
		u.timeout = d
	}
}

func NewBookingSubmissionUseCase(bookings interfaces.IBookingRepository, receipts interfaces.IReceiptStore, quotes IQuoteUseCase, opts ...SubmissionOption) *BookingSubmissionUseCase {
	u := &BookingSubmissionUseCase{bookings: bookings, receipts: receipts, quotes: quotes}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Submit validates the draft and, if it passes, uploads the receipt and
// persists the booking in strict sequence (create needs the receipt URL).
//
// A failed attempt leaves every draft field (receipt included) in place so
// the customer can retry without re-entering anything; the retry re-runs
// the whole sequence, so repeated failures may leave orphaned uploads.
func (u *BookingSubmissionUseCase) Submit(ctx context.Context, draft *BookingDraft) (entities.Booking, error) {
	if draft == nil || draft.Package.ID == "" {
		return entities.Booking{}, ErrMissingPackage
	}

	switch draft.gateState {
	case DraftStateSubmitting:
		return entities.Booking{}, ErrSubmissionInProgress
	case DraftStateSubmitted:
		return entities.Booking{}, ErrDraftAlreadySubmitted
	}

	// Local validation first: no external side effects on refusal.
	if !draft.contactComplete() {
		return entities.Booking{}, ErrMissingContactInfo
	}
	if draft.CheckinDate == nil {
		return entities.Booking{}, ErrMissingCheckinDate
	}
	if draft.Receipt == nil {
		return entities.Booking{}, ErrMissingReceipt
	}

	quote := draft.Quote(u.quotes)
	if !quote.IsEligible {
		log.Printf("[booking][usecase] submit refused package_id=%s required=%d actual=%d", draft.Package.ID, draft.Package.MinHeadcount, quote.Adults)
		return entities.Booking{}, &HeadcountBelowMinimumError{Required: draft.Package.MinHeadcount, Actual: quote.Adults}
	}

	draft.gateState = DraftStateSubmitting
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	log.Printf("[booking][usecase] uploading receipt package_id=%s file=%s size=%d", draft.Package.ID, draft.Receipt.Name, len(draft.Receipt.Data))
	receiptURL, err := u.receipts.Upload(ctx, draft.Receipt.Name, draft.Receipt.ContentType, draft.Receipt.Data)
	if err != nil {
		draft.gateState = DraftStateFailed
		log.Printf("[booking][usecase] receipt upload failed package_id=%s err=%v", draft.Package.ID, err)
		return entities.Booking{}, fmt.Errorf("%w: %v", ErrReceiptUploadFailed, err)
	}

	now := time.Now().UTC()
	b := entities.Booking{
		ID:               uuid.NewString(),
		Status:           entities.BookingStatusPendingDeposit,
		PackageID:        draft.Package.ID,
		PackageName:      draft.Package.Name,
		CheckinDate:      *draft.CheckinDate,
		FullName:         draft.FullName,
		Email:            draft.Email,
		Phone:            draft.Phone,
		Adults:           quote.Adults,
		Children:         quote.Children,
		HeadcountTotal:   quote.HeadcountTotal,
		Addons:           draft.Addons,
		NaturePreference: draft.NaturePreference,
		ReceiptURL:       receiptURL,
		PricePerPerson:   draft.Package.PricePerPerson,
		Subtotal:         quote.Subtotal,
		DepositDue:       quote.DepositDue,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := u.bookings.Create(ctx, b)
	if err != nil {
		draft.gateState = DraftStateFailed
		log.Printf("[booking][usecase] booking create failed package_id=%s booking_id=%s err=%v", draft.Package.ID, b.ID, err)
		return entities.Booking{}, fmt.Errorf("%w: %v", ErrBookingPersistFailed, err)
	}

	draft.gateState = DraftStateSubmitted
	log.Printf("[booking][usecase] submit success package_id=%s booking_id=%s deposit_due=%.2f", draft.Package.ID, created.ID, created.DepositDue)
	return created, nil
}
