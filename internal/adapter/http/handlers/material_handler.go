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

var errInvalidMaterialPayload = pkg.NewDomainErrorSimple("INVALID_MATERIAL_INPUT", "Invalid material payload", http.StatusBadRequest)

// MaterialHandler handles HTTP requests for the material (insumo) catalog.

type MaterialHandler struct {
	usecase usecase.IMaterialUseCase
}

func NewMaterialHandler(uc usecase.IMaterialUseCase) *MaterialHandler {
	return &MaterialHandler{usecase: uc}
}

func (h *MaterialHandler) Create(c *gin.Context) {
	storeID := middleware.StoreID(c)

	var payload request.MaterialRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	material, err := h.usecase.Create(c.Request.Context(), storeID, payload.ToInput())
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, material)
}

func (h *MaterialHandler) List(c *gin.Context) {
	storeID := middleware.StoreID(c)

	materials, err := h.usecase.ListByStore(c.Request.Context(), storeID)
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, materials)
}

func (h *MaterialHandler) Get(c *gin.Context) {
	storeID := middleware.StoreID(c)

	material, err := h.usecase.GetByID(c.Request.Context(), storeID, c.Param("id"))
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, material)
}

func (h *MaterialHandler) Update(c *gin.Context) {
	storeID := middleware.StoreID(c)

	var payload request.MaterialUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMaterialPayload.HTTPStatus, errInvalidMaterialPayload.ToHTTPError())
		return
	}

	material, err := h.usecase.Update(c.Request.Context(), storeID, c.Param("id"), payload.ToUpdateInput())
	if err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, material)
}

func (h *MaterialHandler) Delete(c *gin.Context) {
	storeID := middleware.StoreID(c)

	if err := h.usecase.Remove(c.Request.Context(), storeID, c.Param("id")); err != nil {
		appErr := mapMaterialError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapMaterialError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStoreID), errors.Is(err, usecase.ErrInvalidMaterialInput):
		return pkg.NewDomainErrorSimple("INVALID_MATERIAL_INPUT", "Invalid material payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMaterialNotFound):
		return pkg.NewDomainErrorSimple("MATERIAL_NOT_FOUND", "Material not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
