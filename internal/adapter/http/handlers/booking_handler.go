package handlers

import (
	"errors"
	"io"
	"log"
	"mime/multipart"
	"net/http"

	request "ckforest/internal/adapter/http/dto/request"
	response "ckforest/internal/adapter/http/dto/response"
	"ckforest/internal/domain/entities"
	"ckforest/internal/usecase"
	"ckforest/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
)

// BookingHandler handles HTTP requests for bookings.
//
// SubmitBooking runs the whole booking attempt server-side: it rebuilds the
// form draft from the multipart payload, attaches the receipt and hands the
// draft to the submission gate.

type BookingHandler struct {
	packages   usecase.IPackageUseCase
	submission usecase.IBookingSubmissionUseCase
	bookings   usecase.IBookingUseCase
}

func NewBookingHandler(packages usecase.IPackageUseCase, submission usecase.IBookingSubmissionUseCase, bookings usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{packages: packages, submission: submission, bookings: bookings}
}

// SubmitBooking accepts the multipart booking form (fields plus the deposit
// receipt under "receipt") and creates the booking.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var payload request.BookingSubmissionRequest
	if err := c.ShouldBind(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] submit start package_id=%s email=%s", payload.PackageID, payload.Email)

	checkin, err := payload.ResolveCheckinDate()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_CHECKIN_DATE", "Check-in date must be YYYY-MM-DD", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	tourPackage, err := h.packages.GetByID(c.Request.Context(), payload.PackageID)
	if err != nil {
		log.Printf("[booking][handler] package lookup failed package_id=%s err=%v", payload.PackageID, err)
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	draft := usecase.NewBookingDraft(tourPackage)
	draft.SetContact(payload.FullName, payload.Email, payload.Phone)
	if checkin != nil {
		draft.SetCheckinDate(*checkin)
	}
	draft.SetGuestCounts(payload.Adults, payload.Children)
	draft.SetAddons(payload.ResolveAddons())
	draft.SetNaturePreference(payload.NaturePreference)

	receipt, err := readReceiptFile(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_RECEIPT", "Could not read receipt file", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if receipt != nil {
		if err := draft.AttachReceipt(*receipt); err != nil && !errors.Is(err, usecase.ErrDraftNotReadyForUpload) {
			c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
			return
		}
	}

	created, err := h.submission.Submit(c.Request.Context(), draft)
	if err != nil {
		log.Printf("[booking][handler] submit failed package_id=%s err=%v", payload.PackageID, err)
		appErr := mapSubmissionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] submit success package_id=%s booking_id=%s", payload.PackageID, created.ID)

	c.JSON(http.StatusCreated, response.FromBooking(created))
}

// ListBookingsByEmail returns a customer's bookings ordered by check-in date.
func (h *BookingHandler) ListBookingsByEmail(c *gin.Context) {
	email := c.Query("email")
	log.Printf("[booking][handler] list-by-email start email=%s", email)

	bookings, err := h.bookings.ListByEmail(c.Request.Context(), email)
	if err != nil {
		log.Printf("[booking][handler] list-by-email failed email=%s err=%v", email, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// ListAllBookings returns the full management queue.
func (h *BookingHandler) ListAllBookings(c *gin.Context) {
	bookings, err := h.bookings.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("[booking][handler] list-all failed err=%v", err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// UpdateBookingStatus moves a booking through the deposit lifecycle.
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	bookingID := c.Param("booking_id")
	var payload request.BookingStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] status update start booking_id=%s status=%s", bookingID, payload.Status)

	updated, err := h.bookings.SetStatus(c.Request.Context(), bookingID, entities.BookingStatus(payload.Status))
	if err != nil {
		log.Printf("[booking][handler] status update failed booking_id=%s err=%v", bookingID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] status update success booking_id=%s status=%s", updated.ID, updated.Status)

	c.JSON(http.StatusOK, response.FromBooking(updated))
}

func readReceiptFile(c *gin.Context) (*usecase.ReceiptFile, error) {
	header, err := c.FormFile("receipt")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	return readReceiptHeader(header)
}

func readReceiptHeader(header *multipart.FileHeader) (*usecase.ReceiptFile, error) {
	f, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &usecase.ReceiptFile{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func mapSubmissionError(err error) *pkg.AppError {
	var shortfall *usecase.HeadcountBelowMinimumError
	switch {
	case errors.Is(err, usecase.ErrMissingPackage), errors.Is(err, usecase.ErrMissingContactInfo),
		errors.Is(err, usecase.ErrMissingCheckinDate), errors.Is(err, usecase.ErrMissingReceipt):
		return pkg.NewDomainError("MISSING_BOOKING_FIELDS", err.Error(), err, http.StatusBadRequest)
	case errors.As(err, &shortfall):
		return pkg.NewDomainErrorSimple("HEADCOUNT_BELOW_MINIMUM", shortfall.Error(), http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrSubmissionInProgress):
		return pkg.NewDomainErrorSimple("SUBMISSION_IN_PROGRESS", "Submission already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrDraftAlreadySubmitted):
		return pkg.NewDomainErrorSimple("ALREADY_SUBMITTED", "Booking was already submitted", http.StatusConflict)
	case errors.Is(err, usecase.ErrReceiptUploadFailed):
		return pkg.NewDomainError("RECEIPT_UPLOAD_FAILED", "Could not store the deposit receipt", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrBookingPersistFailed):
		return pkg.NewDomainError("BOOKING_PERSIST_FAILED", "Could not save the booking", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidEmail), errors.Is(err, usecase.ErrInvalidBookingStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
