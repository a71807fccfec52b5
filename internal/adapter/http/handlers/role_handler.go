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

var errInvalidRolePayload = pkg.NewDomainErrorSimple("INVALID_ROLE_INPUT", "Invalid role payload", http.StatusBadRequest)

// RoleHandler handles HTTP requests for the labor function catalog.

type RoleHandler struct {
	usecase usecase.IRoleUseCase
}

func NewRoleHandler(uc usecase.IRoleUseCase) *RoleHandler {
	return &RoleHandler{usecase: uc}
}

func (h *RoleHandler) Create(c *gin.Context) {
	storeID := middleware.StoreID(c)

	var payload request.RoleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRolePayload.HTTPStatus, errInvalidRolePayload.ToHTTPError())
		return
	}

	role, err := h.usecase.Create(c.Request.Context(), storeID, payload.ToInput())
	if err != nil {
		appErr := mapRoleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, role)
}

func (h *RoleHandler) List(c *gin.Context) {
	storeID := middleware.StoreID(c)

	roles, err := h.usecase.ListByStore(c.Request.Context(), storeID)
	if err != nil {
		appErr := mapRoleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, roles)
}

func (h *RoleHandler) Get(c *gin.Context) {
	storeID := middleware.StoreID(c)

	role, err := h.usecase.GetByID(c.Request.Context(), storeID, c.Param("id"))
	if err != nil {
		appErr := mapRoleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) Update(c *gin.Context) {
	storeID := middleware.StoreID(c)

	var payload request.RoleUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRolePayload.HTTPStatus, errInvalidRolePayload.ToHTTPError())
		return
	}

	role, err := h.usecase.Update(c.Request.Context(), storeID, c.Param("id"), payload.ToUpdateInput())
	if err != nil {
		appErr := mapRoleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, role)
}

func (h *RoleHandler) Delete(c *gin.Context) {
	storeID := middleware.StoreID(c)

	if err := h.usecase.Remove(c.Request.Context(), storeID, c.Param("id")); err != nil {
		appErr := mapRoleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapRoleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStoreID), errors.Is(err, usecase.ErrInvalidRoleInput):
		return pkg.NewDomainErrorSimple("INVALID_ROLE_INPUT", "Invalid role payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRoleNotFound):
		return pkg.NewDomainErrorSimple("ROLE_NOT_FOUND", "Role not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
