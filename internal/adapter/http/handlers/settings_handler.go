package handlers

import (
	"errors"
	"net/http"

	request "comunikapp/internal/adapter/http/dto/request"
	"comunikapp/internal/adapter/http/middleware"
	"comunikapp/internal/usecase"
	"comunikapp/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSettingsPayload = pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)

// SettingsHandler handles HTTP requests for the store cost configuration.

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	storeID := middleware.StoreID(c)

	settings, err := h.usecase.Get(c.Request.Context(), storeID)
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, settings)
}

// Save upserts the store settings; absent fields keep their stored values.
func (h *SettingsHandler) Save(c *gin.Context) {
	storeID := middleware.StoreID(c)

	var payload request.SettingsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSettingsPayload.HTTPStatus, errInvalidSettingsPayload.ToHTTPError())
		return
	}

	settings, err := h.usecase.Save(c.Request.Context(), storeID, payload.ToInput())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, settings)
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStoreID), errors.Is(err, usecase.ErrInvalidSettingsInput):
		return pkg.NewDomainErrorSimple("INVALID_SETTINGS_INPUT", "Invalid settings payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStoreNotFound):
		return pkg.NewDomainErrorSimple("STORE_NOT_FOUND", "Store not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
