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

var errInvalidMachinePayload = pkg.NewDomainErrorSimple("INVALID_MACHINE_INPUT", "Invalid machine payload", http.StatusBadRequest)

// MachineHandler handles HTTP requests for the machine catalog.

type MachineHandler struct {
	usecase usecase.IMachineUseCase
}

func NewMachineHandler(uc usecase.IMachineUseCase) *MachineHandler {
	return &MachineHandler{usecase: uc}
}

func (h *MachineHandler) Create(c *gin.Context) {
	storeID := middleware.StoreID(c)

	var payload request.MachineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMachinePayload.HTTPStatus, errInvalidMachinePayload.ToHTTPError())
		return
	}

	machine, err := h.usecase.Create(c.Request.Context(), storeID, payload.ToInput())
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, machine)
}

func (h *MachineHandler) List(c *gin.Context) {
	storeID := middleware.StoreID(c)

	machines, err := h.usecase.ListByStore(c.Request.Context(), storeID)
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, machines)
}

func (h *MachineHandler) Get(c *gin.Context) {
	storeID := middleware.StoreID(c)

	machine, err := h.usecase.GetByID(c.Request.Context(), storeID, c.Param("id"))
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, machine)
}

func (h *MachineHandler) Update(c *gin.Context) {
	storeID := middleware.StoreID(c)

	var payload request.MachineUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMachinePayload.HTTPStatus, errInvalidMachinePayload.ToHTTPError())
		return
	}

	machine, err := h.usecase.Update(c.Request.Context(), storeID, c.Param("id"), payload.ToUpdateInput())
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, machine)
}

func (h *MachineHandler) Delete(c *gin.Context) {
	storeID := middleware.StoreID(c)

	if err := h.usecase.Remove(c.Request.Context(), storeID, c.Param("id")); err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapMachineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStoreID), errors.Is(err, usecase.ErrInvalidMachineInput):
		return pkg.NewDomainErrorSimple("INVALID_MACHINE_INPUT", "Invalid machine payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMachineNotFound):
		return pkg.NewDomainErrorSimple("MACHINE_NOT_FOUND", "Machine not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
