package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Zafar-Sheik/roadworks-service/internal/middleware"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

// AuthRoutes handles authentication route registration.
type AuthRoutes struct {
	handler *AuthHandler
}

// NewAuthRoutes creates a new AuthRoutes instance.
func NewAuthRoutes(authService service.AuthService, audit middleware.LogSink) *AuthRoutes {
	return &AuthRoutes{handler: NewAuthHandler(authService, audit)}
}

// RegisterPublicRoutes registers login, registration and token refresh.
func (r *AuthRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/login", r.handler.Login)
	auth.POST("/register", r.handler.Register)
	auth.POST("/refresh", r.handler.RefreshToken)
}

// RegisterProtectedRoutes registers logout.
func (r *AuthRoutes) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/logout", r.handler.Logout)
}
