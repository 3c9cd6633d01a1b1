package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/Zafar-Sheik/roadworks-service/config"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
)

// Claims is the verified identity of the caller.
type Claims = dto.Claims

// AuthService provides authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error)
	// Register creates a laborer account and signs it in.
	Register(ctx context.Context, email, password, company string) (*dto.TokenPair, *model.User, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error)
	ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error)
	InvalidateUserTokens(ctx context.Context, userID primitive.ObjectID) error
	Logout(ctx context.Context, accessToken, refreshToken string) error
}

// AuthServiceImpl implements AuthService.
// It handles credential checks and delegates token operations to TokenService.
type AuthServiceImpl struct {
	userRepo     repository.UserRepositoryInterface
	tokenService TokenService
	bcryptCost   int
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	userRepo repository.UserRepositoryInterface,
	tokenRepo repository.TokenRepositoryInterface,
	authConfig config.AuthConfig,
) AuthService {
	tokenService := NewTokenService(tokenRepo, NewTokenConfigFromAuthConfig(authConfig))
	return NewAuthServiceWithTokenService(userRepo, tokenService, authConfig.BcryptCost)
}

// NewAuthServiceWithTokenService creates an authentication service around an existing TokenService.
func NewAuthServiceWithTokenService(
	userRepo repository.UserRepositoryInterface,
	tokenService TokenService,
	bcryptCost int,
) AuthService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthServiceImpl{
		userRepo:     userRepo,
		tokenService: tokenService,
		bcryptCost:   bcryptCost,
	}
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*dto.TokenPair, *model.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if user == nil || !user.Active {
		return nil, nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	// One live refresh token per user
	if err := s.tokenService.InvalidateUserTokens(ctx, user.ID); err != nil {
		return nil, nil, fmt.Errorf("failed to invalidate existing tokens: %w", err)
	}

	tokenPair, err := s.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	return tokenPair, user, nil
}

func (s *AuthServiceImpl) Register(ctx context.Context, email, password, company string) (*dto.TokenPair, *model.User, error) {
	user, err := createUser(ctx, s.userRepo, s.bcryptCost, email, password, model.RoleLaborer, company)
	if err != nil {
		return nil, nil, err
	}

	tokenPair, err := s.tokenService.GenerateTokenPair(ctx, user)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate token pair: %w", err)
	}

	return tokenPair, user, nil
}

func (s *AuthServiceImpl) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenPair, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenService.FindRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	if token == nil || token.Type != model.TokenTypeRefresh || time.Now().After(token.ExpiresAt) {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Active {
		return nil, ErrInvalidCredentials
	}

	if err := s.tokenService.DeleteRefreshToken(ctx, refreshToken); err != nil {
		return nil, fmt.Errorf("failed to delete old refresh token: %w", err)
	}

	return s.tokenService.GenerateTokenPair(ctx, user)
}

// ValidateToken verifies the access token and that its subject is still active,
// so deactivation takes effect before the token expires.
func (s *AuthServiceImpl) ValidateToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	claims, err := s.tokenService.ValidateAccessToken(ctx, tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("load token subject: %w", err)
	}
	if user == nil || !user.Active {
		return nil, ErrUserInactive
	}
	return claims, nil
}

func (s *AuthServiceImpl) InvalidateUserTokens(ctx context.Context, userID primitive.ObjectID) error {
	return s.tokenService.InvalidateUserTokens(ctx, userID)
}

func (s *AuthServiceImpl) Logout(ctx context.Context, accessToken, refreshToken string) error {
	var errs []error

	if accessToken != "" {
		if err := s.tokenService.InvalidateAccessToken(ctx, accessToken); err != nil {
			log.Warn().Err(err).Msg("failed to invalidate access token during logout")
			errs = append(errs, fmt.Errorf("invalidate access token: %w", err))
		}
	}

	if refreshToken != "" {
		if err := s.tokenService.DeleteRefreshToken(ctx, refreshToken); err != nil {
			log.Warn().Err(err).Msg("failed to delete refresh token during logout")
			errs = append(errs, fmt.Errorf("delete refresh token: %w", err))
		}
	}

	return errors.Join(errs...)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// createUser hashes the password and stores a new active account.
func createUser(ctx context.Context, repo repository.UserRepositoryInterface, cost int, email, password string, role model.Role, company string) (*model.User, error) {
	email = normalizeEmail(email)

	existing, err := repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:    email,
		Password: string(hashed),
		Role:     role,
		Company:  company,
		Active:   true,
	}
	if err := repo.Create(ctx, user); err != nil {
		if repository.IsDuplicateKey(err) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
