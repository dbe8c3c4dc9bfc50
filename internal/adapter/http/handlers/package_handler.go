package handlers

import (
	"errors"
	"log"
	"net/http"

	request "ckforest/internal/adapter/http/dto/request"
	response "ckforest/internal/adapter/http/dto/response"
	"ckforest/internal/usecase"
	"ckforest/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPackagePayload = pkg.NewDomainErrorSimple("INVALID_PACKAGE_INPUT", "Invalid package payload", http.StatusBadRequest)
)

// PackageHandler handles HTTP requests for the tour package catalogue.

type PackageHandler struct {
	usecase usecase.IPackageUseCase
}

func NewPackageHandler(uc usecase.IPackageUseCase) *PackageHandler {
	return &PackageHandler{usecase: uc}
}

// ListPackages returns every package the booking page can offer.
func (h *PackageHandler) ListPackages(c *gin.Context) {
	packages, err := h.usecase.List(c.Request.Context())
	if err != nil {
		log.Printf("[package][handler] list failed err=%v", err)
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTourPackages(packages))
}

// GetPackage returns a single package by id.
func (h *PackageHandler) GetPackage(c *gin.Context) {
	packageID := c.Param("package_id")

	p, err := h.usecase.GetByID(c.Request.Context(), packageID)
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTourPackage(p))
}

// UpsertPackage creates a package, or replaces it when the payload carries
// an id.
func (h *PackageHandler) UpsertPackage(c *gin.Context) {
	var payload request.PackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPackagePayload.HTTPStatus, errInvalidPackagePayload.ToHTTPError())
		return
	}
	log.Printf("[package][handler] upsert start id=%s name=%s", payload.ID, payload.Name)

	saved, err := h.usecase.Upsert(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[package][handler] upsert failed id=%s err=%v", payload.ID, err)
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[package][handler] upsert success id=%s", saved.ID)

	c.JSON(http.StatusOK, response.FromTourPackage(saved))
}

// DeletePackage removes a package from the catalogue. Existing bookings keep
// their copied package name and price.
func (h *PackageHandler) DeletePackage(c *gin.Context) {
	packageID := c.Param("package_id")
	log.Printf("[package][handler] delete start id=%s", packageID)

	if err := h.usecase.Delete(c.Request.Context(), packageID); err != nil {
		log.Printf("[package][handler] delete failed id=%s err=%v", packageID, err)
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapPackageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPackageID), errors.Is(err, usecase.ErrInvalidPackageName),
		errors.Is(err, usecase.ErrInvalidPrice), errors.Is(err, usecase.ErrInvalidMinHeads):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
