package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	authDomain "github.com/allisson/itemsapi/internal/auth/domain"
	"github.com/allisson/itemsapi/internal/auth/http/dto"
	authUseCase "github.com/allisson/itemsapi/internal/auth/usecase"
	"github.com/allisson/itemsapi/internal/httputil"
	customValidation "github.com/allisson/itemsapi/internal/validation"
)

// ClientHandler handles HTTP requests for client management operations.
// Every route is mounted behind AdminMiddleware.
type ClientHandler struct {
	clientUseCase authUseCase.ClientUseCase
	logger        *slog.Logger
}

// NewClientHandler creates a new client handler with required dependencies.
func NewClientHandler(
	clientUseCase authUseCase.ClientUseCase,
	logger *slog.Logger,
) *ClientHandler {
	return &ClientHandler{
		clientUseCase: clientUseCase,
		logger:        logger,
	}
}

// CreateHandler creates a new client with generated credentials.
// POST /api/v1/clients
// Returns 201 Created with the client and its plaintext client_secret.
func (h *ClientHandler) CreateHandler(c *gin.Context) {
	var req dto.CreateClientRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &authDomain.CreateClientInput{
		Name:    req.Name,
		IsAdmin: req.IsAdmin,
	}

	output, err := h.clientUseCase.Create(c.Request.Context(), input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusCreated, dto.ClientWithCredentialsResponse{
		ClientResponse: dto.MapClientToResponse(output.Client),
		ClientSecret:   output.ClientSecret,
	})
}

// ListHandler lists clients with pagination.
// GET /api/v1/clients?offset=0&limit=50&include_deleted=false
func (h *ClientHandler) ListHandler(c *gin.Context) {
	page, err := httputil.ParsePage(c)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	includeDeleted, err := httputil.ParseBoolQuery(c, "include_deleted", false)
	if err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	clients, err := h.clientUseCase.List(c.Request.Context(), includeDeleted, page.Offset, page.Limit)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapClientsToListResponse(clients))
}

// GetHandler retrieves an active client by ID.
// GET /api/v1/clients/:id
func (h *ClientHandler) GetHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	client, err := h.clientUseCase.Get(c.Request.Context(), id)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.MapClientToResponse(client))
}

// UpdateHandler partially updates an active client.
// PATCH /api/v1/clients/:id
// The response includes client_secret only when regenerate_credentials was set.
func (h *ClientHandler) UpdateHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	var req dto.UpdateClientRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	input := &authDomain.UpdateClientInput{
		Name:                  req.Name,
		IsAdmin:               req.IsAdmin,
		RegenerateCredentials: req.RegenerateCredentials,
	}

	output, err := h.clientUseCase.Update(c.Request.Context(), id, input)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.ClientWithCredentialsResponse{
		ClientResponse: dto.MapClientToResponse(output.Client),
		ClientSecret:   output.ClientSecret,
	})
}

// DeleteHandler soft deletes a client.
// DELETE /api/v1/clients/:id
// Returns 204 No Content.
func (h *ClientHandler) DeleteHandler(c *gin.Context) {
	id, err := httputil.ParseIDParam(c, "id")
	if err != nil {
		httputil.HandleValidationErrorGin(c, err, h.logger)
		return
	}

	if err := h.clientUseCase.Delete(c.Request.Context(), id); err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Status(http.StatusNoContent)
}
