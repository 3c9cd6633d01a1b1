package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/i18n"
)

// RequireRole returns a middleware that admits callers whose role is one of allowed.
// It must run after JWTAuth.
func RequireRole(allowed ...model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			abortWithError(c, http.StatusUnauthorized, i18n.ErrKeyUnauthorized)
			return
		}

		if !claims.Role.In(allowed...) {
			abortWithError(c, http.StatusForbidden, i18n.ErrKeyForbidden)
			return
		}

		c.Next()
	}
}
