package handlers

import (
	"net/http"

	request "ckforest/internal/adapter/http/dto/request"
	response "ckforest/internal/adapter/http/dto/response"
	"ckforest/internal/usecase"
	"ckforest/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for price projections.
//
// The booking form calls this on every keystroke in the guest inputs, so
// malformed counts are never an error here: they price as zero guests.

type QuoteHandler struct {
	packages usecase.IPackageUseCase
	quotes   usecase.IQuoteUseCase
}

func NewQuoteHandler(packages usecase.IPackageUseCase, quotes usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{packages: packages, quotes: quotes}
}

// CreateQuote computes subtotal, deposit due and eligibility for a package
// and the raw guest counts as typed.
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	tourPackage, err := h.packages.GetByID(c.Request.Context(), payload.PackageID)
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote := h.quotes.ComputeQuote(tourPackage, payload.Adults, payload.Children)
	c.JSON(http.StatusOK, response.FromQuote(quote))
}
