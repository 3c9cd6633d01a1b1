package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/i18n"
	"github.com/Zafar-Sheik/roadworks-service/internal/middleware"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

// RefreshTokenHeader carries the refresh token on refresh and logout.
const RefreshTokenHeader = "X-Refresh-Token"

// AuthHandler provides HTTP handlers for authentication routes.
type AuthHandler struct {
	authService service.AuthService
	audit       middleware.LogSink
}

// NewAuthHandler creates a new authentication handler. audit may be nil.
func NewAuthHandler(authService service.AuthService, audit middleware.LogSink) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

// Login handles POST /api/auth/login requests.
//
// @Summary      Login user
// @Description  Authenticates a user and returns an access and refresh token pair
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "Login credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.LoginResponse} "Successful login"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid credentials"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.LoginRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	pair, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			middleware.AuditLogError(h.audit, c, model.ActionLogin, "Failed login attempt", err,
				map[string]interface{}{"email": req.Email})
		}
		respondError(builder, err)
		return
	}

	c.Set(middleware.UserEmailKey, user.Email)
	middleware.AuditLog(h.audit, c, model.ActionLogin, "User logged in",
		map[string]interface{}{"user_id": user.ID.Hex(), "email": user.Email})

	builder.SuccessOK(loginResponse(pair, user))
}

// Register handles POST /api/auth/register requests.
//
// @Summary      Register laborer
// @Description  Creates a laborer account in one of the configured companies and signs it in
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "Registration information"
// @Success      201 {object} dto.SuccessResponse{data=dto.LoginResponse} "Successful registration"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      409 {object} dto.ErrorResponse "Conflict - email already registered"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.RegisterRequest](c)
	if err != nil {
		respondBindError(builder, err)
		return
	}

	pair, user, err := h.authService.Register(c.Request.Context(), req.Email, req.Password, req.Company)
	if err != nil {
		respondError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionRegister, "Laborer registered",
		map[string]interface{}{"user_id": user.ID.Hex(), "email": user.Email, "company": user.Company})

	builder.SuccessCreated(loginResponse(pair, user))
}

// RefreshToken handles POST /api/auth/refresh requests.
//
// @Summary      Refresh access token
// @Description  Rotates the refresh token and issues a new access token
// @Tags         Auth
// @Produce      json
// @Param        X-Refresh-Token header string true "Refresh token"
// @Success      200 {object} dto.SuccessResponse{data=dto.TokenPair} "New token pair"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing refresh token"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - invalid refresh token"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/refresh [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	builder := NewResponseBuilder(c)

	refreshToken := c.GetHeader(RefreshTokenHeader)
	if refreshToken == "" {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil,
			map[string]string{RefreshTokenHeader: "is required"})
		return
	}

	pair, err := h.authService.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		respondError(builder, err)
		return
	}

	builder.SuccessOK(pair)
}

// Logout handles POST /api/auth/logout requests.
//
// @Summary      Logout user
// @Description  Blacklists the access token and deletes the refresh token
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Param        X-Refresh-Token header string true "Refresh token"
// @Success      200 {object} dto.SuccessResponse "Logged out"
// @Failure      400 {object} dto.ErrorResponse "Bad request - missing refresh token"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	accessToken, ok := middleware.BearerToken(c)
	if !ok {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyTokenRequired, nil)
		return
	}

	refreshToken := c.GetHeader(RefreshTokenHeader)
	if refreshToken == "" {
		builder.ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidRequest, nil,
			map[string]string{RefreshTokenHeader: "is required"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), accessToken, refreshToken); err != nil {
		respondError(builder, err)
		return
	}

	middleware.AuditLog(h.audit, c, model.ActionLogout, "User logged out", nil)
	builder.SuccessOK(map[string]string{"message": "Logged out successfully"})
}

func loginResponse(pair *dto.TokenPair, user *model.User) dto.LoginResponse {
	return dto.LoginResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
		User:         dto.NewUserResponse(user),
	}
}
