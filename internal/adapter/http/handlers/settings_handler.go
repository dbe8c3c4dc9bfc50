package handlers

import (
	"log"
	"net/http"

	request "ckforest/internal/adapter/http/dto/request"
	response "ckforest/internal/adapter/http/dto/response"
	"ckforest/internal/usecase"
	"ckforest/pkg"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles HTTP requests for the site-wide settings row.

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// GetSettings returns contact details and deposit instructions. An empty
// table reads as zero-valued settings, not an error.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.usecase.Get(c.Request.Context())
	if err != nil {
		log.Printf("[settings][handler] get failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSettings(settings))
}

// UpdateSettings replaces the settings row.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, err := h.usecase.Upsert(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[settings][handler] update failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[settings][handler] update success contact_email=%s", saved.ContactEmail)

	c.JSON(http.StatusOK, response.FromSettings(saved))
}
