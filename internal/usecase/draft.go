package usecase

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"ckforest/internal/domain/entities"
)

var (
	ErrDraftLocked            = errors.New("draft is locked while a receipt is attached")
	ErrDraftNotReadyForUpload = errors.New("contact details and check-in date are required before uploading a receipt")
	ErrDraftConsumed          = errors.New("draft was already submitted")
)

// DraftState tracks where a booking attempt sits between first edit and
// persisted record.

type DraftState string

const (
	DraftStateEditing         DraftState = "editing"
	DraftStateReadyToUpload   DraftState = "ready_to_upload"
	DraftStateReceiptAttached DraftState = "receipt_attached"
	DraftStateSubmitting      DraftState = "submitting"
	DraftStateSubmitted       DraftState = "submitted"
	DraftStateFailed          DraftState = "failed"
)

// ReceiptFile is the proof-of-payment blob attached to a draft before it
// is handed to the submission gate.
type ReceiptFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// BookingDraft aggregates one booking attempt for a selected package.
//
// Domain notes:
//   - editing -> ready_to_upload happens by itself once full name, email,
//     phone and a check-in date exist. Headcount eligibility is NOT part of
//     this gate; customers may upload a receipt before adjusting counts.
//   - attaching a receipt locks every form field until it is detached.
//   - submitting/submitted/failed are owned by the submission gate.
//   - a draft is consumed exactly once; after submitted it rejects edits.
type BookingDraft struct {
	Package          entities.TourPackage
	FullName         string
	Email            string
	Phone            string
	CheckinDate      *time.Time
	AdultsRaw        string
	ChildrenRaw      string
	Addons           entities.AddonSelection
	NaturePreference string
	Receipt          *ReceiptFile

	gateState DraftState
}

// NewBookingDraft creates an empty draft for pkg. Adults defaults to the
// package minimum, mirroring the booking form's prefill.
func NewBookingDraft(pkg entities.TourPackage) *BookingDraft {
	return &BookingDraft{
		Package:     pkg,
		AdultsRaw:   strconv.Itoa(pkg.MinHeadcount),
		ChildrenRaw: "0",
		gateState:   DraftStateEditing,
	}
}

// State derives the current position in the lifecycle. The edit-phase
// states are a pure function of the draft's fields; the submission states
// are stamped by the gate.
func (d *BookingDraft) State() DraftState {
	switch d.gateState {
	case DraftStateSubmitting, DraftStateSubmitted, DraftStateFailed:
		return d.gateState
	}
	if d.Receipt != nil {
		return DraftStateReceiptAttached
	}
	if d.contactComplete() && d.CheckinDate != nil {
		return DraftStateReadyToUpload
	}
	return DraftStateEditing
}

// Locked reports whether form fields are immutable. Fields lock once a
// receipt is attached and stay locked through submission; detaching the
// receipt is the only unlock.
func (d *BookingDraft) Locked() bool {
	if d.gateState == DraftStateSubmitting || d.gateState == DraftStateSubmitted {
		return true
	}
	return d.Receipt != nil
}

func (d *BookingDraft) SetContact(fullName, email, phone string) error {
	if err := d.editable(); err != nil {
		return err
	}
	d.FullName = fullName
	d.Email = email
	d.Phone = phone
	return nil
}

func (d *BookingDraft) SetCheckinDate(date time.Time) error {
	if err := d.editable(); err != nil {
		return err
	}
	day := date.Truncate(24 * time.Hour)
	d.CheckinDate = &day
	return nil
}

func (d *BookingDraft) SetGuestCounts(adultsRaw, childrenRaw string) error {
	if err := d.editable(); err != nil {
		return err
	}
	d.AdultsRaw = adultsRaw
	d.ChildrenRaw = childrenRaw
	return nil
}

func (d *BookingDraft) SetAddons(addons entities.AddonSelection) error {
	if err := d.editable(); err != nil {
		return err
	}
	d.Addons = addons
	return nil
}

func (d *BookingDraft) SetNaturePreference(pref string) error {
	if err := d.editable(); err != nil {
		return err
	}
	d.NaturePreference = pref
	return nil
}

// AttachReceipt moves the draft to receipt_attached. It is only permitted
// once contact details and a check-in date exist.
func (d *BookingDraft) AttachReceipt(f ReceiptFile) error {
	if d.gateState == DraftStateSubmitted {
		return ErrDraftConsumed
	}
	if d.State() != DraftStateReadyToUpload && d.State() != DraftStateFailed {
		if d.Receipt != nil {
			return ErrDraftLocked
		}
		return ErrDraftNotReadyForUpload
	}
	d.Receipt = &f
	return nil
}

// DetachReceipt clears the receipt and re-opens the form for edits. It also
// resets a failed attempt back into the edit phase.
func (d *BookingDraft) DetachReceipt() error {
	if d.gateState == DraftStateSubmitted {
		return ErrDraftConsumed
	}
	if d.gateState == DraftStateSubmitting {
		return ErrDraftLocked
	}
	d.Receipt = nil
	d.gateState = DraftStateEditing
	return nil
}

// Quote recomputes the price projection for the draft's current inputs.
func (d *BookingDraft) Quote(quotes IQuoteUseCase) entities.PriceQuote {
	return quotes.ComputeQuote(d.Package, d.AdultsRaw, d.ChildrenRaw)
}

func (d *BookingDraft) contactComplete() bool {
	return trimmed(d.FullName) && trimmed(d.Email) && trimmed(d.Phone)
}

func (d *BookingDraft) editable() error {
	if d.gateState == DraftStateSubmitted {
		return ErrDraftConsumed
	}
	if d.Locked() {
		return ErrDraftLocked
	}
	return nil
}

func trimmed(s string) bool {
	return strings.TrimSpace(s) != ""
}
