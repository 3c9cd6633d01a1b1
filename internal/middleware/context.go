package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/i18n"
)

// Gin context keys set by the authentication middleware.
const (
	ClaimsKey    = "user_claims"
	UserIDKey    = "user_id"
	UserEmailKey = "user_email"
)

// GetClaims returns the verified caller identity stored by JWTAuth.
func GetClaims(c *gin.Context) (*dto.Claims, bool) {
	v, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*dto.Claims)
	return claims, ok && claims != nil
}

// abortWithError writes the localized error envelope and stops the chain.
func abortWithError(c *gin.Context, status int, messageKey string) {
	message := i18n.GetTranslator().Translate(messageKey, i18n.GetLocale(c))
	c.AbortWithStatusJSON(status, dto.NewError(dto.ErrCodeFromStatus(status), message).
		WithRequestID(GetRequestID(c)))
}
