package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studenthub-backend/internal/domains/apikey/model"
	"studenthub-backend/internal/domains/apikey/service"
	"studenthub-backend/internal/shared/response"
)

// APIKeyHandler handles HTTP requests for the apikey domain
type APIKeyHandler struct {
	service service.ServiceInterface
}

// NewAPIKeyHandler creates a new api-key handler instance
func NewAPIKeyHandler(service service.ServiceInterface) *APIKeyHandler {
	return &APIKeyHandler{service: service}
}

// Generate handles POST /generate-api-key. The plaintext token appears
// in this response and nowhere else.
func (h *APIKeyHandler) Generate(c *gin.Context) {
	issued, err := h.service.Issue(c.Request.Context())
	if err != nil {
		statusCode, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusCreated, issued)
}

// Revoke handles POST /api-keys/revoke
func (h *APIKeyHandler) Revoke(c *gin.Context) {
	var req model.RevokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}
	if err := req.Validate(); err != nil {
		statusCode, message, code := model.GetErrorResponse(model.NewValidationError(err))
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	if err := h.service.Revoke(c.Request.Context(), req.Key); err != nil {
		statusCode, message, code := model.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"revoked": true})
}
