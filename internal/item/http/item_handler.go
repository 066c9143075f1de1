// Package http provides HTTP handlers for owner scoped item operations.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authHTTP "github.com/allisson/itemsapi/internal/auth/http"
	apperrors "github.com/allisson/itemsapi/internal/errors"
	"github.com/allisson/itemsapi/internal/httputil"
	itemDomain "github.com/allisson/itemsapi/internal/item/domain"
	"github.com/allisson/itemsapi/internal/item/http/dto"
	itemUseCase "github.com/allisson/itemsapi/internal/item/usecase"
	customValidation "github.com/allisson/itemsapi/internal/validation"
)

// ItemHandler handles HTTP requests for item operations.
// Every route requires AuthenticationMiddleware; the caller is always the owner.
type ItemHandler struct {
	itemUseCase itemUseCase.ItemUseCase
	logger      *slog.Logger
}

// NewItemHandler creates a new item handler with required dependencies.
func NewItemHandler(itemUseCase itemUseCase.ItemUseCase, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		itemUseCase: itemUseCase,
		logger:      logger,
	}
}

// ownerID returns the authenticated client's id or writes a 401.
func (h *ItemHandler) ownerID(c *gin.Context) (int64, bool) {
	client, ok := authHTTP.GetClient(c.Request.Context())
	if !ok {
		httputil.HandleErrorGin(c, apperrors.ErrUnauthorized, h.logger)
		return 0, false
	}
	return client.ID, true
}

// CreateHandler creates an item owned by the caller.
// POST /api/v1/items
func (h *ItemHandler) CreateHandler(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	var req dto.CreateItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	item, err := h.itemUseCase.Create(c.Request.Context(), ownerID, &itemDomain.CreateItemInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.MapItemToResponse(item))
}

// ListHandler lists the caller's items.
// GET /api/v1/items?offset=0&limit=50
func (h *ItemHandler) ListHandler(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	items, err := h.itemUseCase.List(c.Request.Context(), ownerID, page.Offset, page.Limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapItemsToListResponse(items))
}

// GetHandler retrieves one of the caller's items.
// GET /api/v1/items/:id
func (h *ItemHandler) GetHandler(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	item, err := h.itemUseCase.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapItemToResponse(item))
}

// UpdateHandler partially updates one of the caller's items.
// PATCH /api/v1/items/:id
func (h *ItemHandler) UpdateHandler(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	item, err := h.itemUseCase.Update(c.Request.Context(), ownerID, id, &itemDomain.UpdateItemInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapItemToResponse(item))
}

// DeleteHandler permanently removes one of the caller's items.
// DELETE /api/v1/items/:id
func (h *ItemHandler) DeleteHandler(c *gin.Context) {
	ownerID, ok := h.ownerID(c)
	if !ok {
		return
	}

	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.itemUseCase.Delete(c.Request.Context(), ownerID, id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
