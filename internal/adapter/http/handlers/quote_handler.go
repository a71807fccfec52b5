package handlers

import (
	"errors"
	"log"
	"net/http"

	request "comunikapp/internal/adapter/http/dto/request"
	response "comunikapp/internal/adapter/http/dto/response"
	"comunikapp/internal/adapter/http/middleware"
	"comunikapp/internal/usecase"
	"comunikapp/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)

// QuoteHandler handles HTTP requests for quote calculation and lifecycle.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// Calculate runs the pricing engine without persisting anything.
func (h *QuoteHandler) Calculate(c *gin.Context) {
	storeID := middleware.StoreID(c)

	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	breakdown, err := h.usecase.Calculate(c.Request.Context(), storeID, payload.ToInput())
	if err != nil {
		log.Printf("[quote][handler] calculate failed store_id=%s err=%v", storeID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// Create computes the breakdown, assigns a quote number and persists the
// quote with its line items.
func (h *QuoteHandler) Create(c *gin.Context) {
	storeID := middleware.StoreID(c)

	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Create(c.Request.Context(), storeID, payload.ToInput())
	if err != nil {
		log.Printf("[quote][handler] create failed store_id=%s err=%v", storeID, err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[quote][handler] create success store_id=%s quote_id=%s numero=%s", storeID, quote.ID, quote.Number)

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) List(c *gin.Context) {
	storeID := middleware.StoreID(c)

	quotes, err := h.usecase.ListByStore(c.Request.Context(), storeID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) Get(c *gin.Context) {
	storeID := middleware.StoreID(c)

	quote, err := h.usecase.GetByID(c.Request.Context(), storeID, c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// Update applies a partial patch. Cost-affecting fields trigger a full
// recomputation and line-item replacement inside the use case.
func (h *QuoteHandler) Update(c *gin.Context) {
	storeID := middleware.StoreID(c)

	var payload request.QuoteUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Update(c.Request.Context(), storeID, c.Param("id"), payload.ToUpdateInput())
	if err != nil {
		log.Printf("[quote][handler] update failed store_id=%s quote_id=%s err=%v", storeID, c.Param("id"), err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) Delete(c *gin.Context) {
	storeID := middleware.StoreID(c)

	if err := h.usecase.Remove(c.Request.Context(), storeID, c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStoreID):
		return pkg.NewDomainErrorSimple("INVALID_STORE", "Invalid store id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidQuoteInput):
		return pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUnknownMaterial):
		return pkg.NewDomainErrorSimple("UNKNOWN_MATERIAL", "Material does not exist in this store", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStoreNotFound):
		return pkg.NewDomainErrorSimple("STORE_NOT_FOUND", "Store not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSettingsIncomplete):
		return pkg.NewDomainErrorSimple("SETTINGS_INCOMPLETE", "Store cost settings are incomplete", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteConflict):
		return pkg.NewDomainErrorSimple("QUOTE_NUMBER_CONFLICT", "Quote numbering conflict, retry the request", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
