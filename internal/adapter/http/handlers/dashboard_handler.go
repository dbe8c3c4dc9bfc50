package handlers

import (
	"log"
	"net/http"

	"ckforest/internal/usecase"
	"ckforest/pkg"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the console landing-page statistics.

type DashboardHandler struct {
	usecase usecase.IDashboardUseCase
}

func NewDashboardHandler(uc usecase.IDashboardUseCase) *DashboardHandler {
	return &DashboardHandler{usecase: uc}
}

// GetStats returns the next check-in and the 30-day booking counts.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		log.Printf("[dashboard][handler] stats failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetTrends returns booking volume per month for the last three months.
func (h *DashboardHandler) GetTrends(c *gin.Context) {
	trends, err := h.usecase.Trends(c.Request.Context())
	if err != nil {
		log.Printf("[dashboard][handler] trends failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, trends)
}
