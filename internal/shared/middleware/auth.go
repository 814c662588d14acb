package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"studenthub-backend/internal/domains/apikey/model"
	"studenthub-backend/internal/domains/apikey/service"
	"studenthub-backend/internal/shared/response"
)

// APIKeyHeader carries the credential on every protected request.
const APIKeyHeader = "X-API-Key"

// APIKeyAuth gates record routes behind an issued key. Attach it once
// at the group level; wiring it per-route is how endpoints end up
// accidentally unprotected.
func APIKeyAuth(keys service.ServiceInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(APIKeyHeader)

		result, err := keys.Authenticate(c.Request.Context(), token)
		if err != nil {
			// Store fault, not a verdict about the credential.
			log.Error().Err(err).Msg("api key authentication unavailable")
			response.InternalServerError(c, "Authentication is temporarily unavailable")
			c.Abort()
			return
		}

		switch result {
		case model.AuthValid:
			c.Next()
		case model.AuthMissing:
			response.Unauthorized(c, "AUTH_MISSING_KEY", "Missing API key")
			c.Abort()
		case model.AuthInactive:
			response.Forbidden(c, "AUTH_KEY_REVOKED", "API key has been revoked")
			c.Abort()
		default:
			response.Unauthorized(c, "AUTH_INVALID_KEY", "Invalid API key")
			c.Abort()
		}
	}
}
