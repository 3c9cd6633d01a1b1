package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zafar-Sheik/roadworks-service/config"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
)

// TokenService provides token-related operations.
type TokenService interface {
	// GenerateTokenPair issues an access and refresh token for a user and stores the refresh token.
	GenerateTokenPair(ctx context.Context, user *model.User) (*dto.TokenPair, error)
	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, tokenString string) (*dto.Claims, error)
	// ValidateRefreshToken validates a refresh token signature and returns its claims.
	ValidateRefreshToken(tokenString string) (*dto.Claims, error)
	// InvalidateAccessToken blacklists an access token until it expires.
	InvalidateAccessToken(ctx context.Context, tokenString string) error
	// InvalidateUserTokens removes all refresh tokens for a user.
	InvalidateUserTokens(ctx context.Context, userID primitive.ObjectID) error
	DeleteRefreshToken(ctx context.Context, tokenString string) error
	FindRefreshToken(ctx context.Context, tokenString string) (*model.Token, error)
}

// ClaimsWithJWT extends dto.Claims with the registered JWT claims.
type ClaimsWithJWT struct {
	dto.Claims
	jwt.RegisteredClaims
}

// TokenConfig holds configuration for the token service.
type TokenConfig struct {
	SecretKey        string
	RefreshSecretKey string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
}

// NewTokenConfigFromAuthConfig creates TokenConfig from config.AuthConfig.
func NewTokenConfigFromAuthConfig(authConfig config.AuthConfig) TokenConfig {
	return TokenConfig{
		SecretKey:        authConfig.JWTSecretKey,
		RefreshSecretKey: authConfig.JWTRefreshSecret,
		AccessTokenTTL:   authConfig.AccessTokenTTL,
		RefreshTokenTTL:  authConfig.RefreshTokenTTL,
	}
}

// TokenServiceImpl implements TokenService.
type TokenServiceImpl struct {
	secretKey        []byte
	refreshSecretKey []byte
	accessTokenTTL   time.Duration
	refreshTokenTTL  time.Duration
	tokenRepo        repository.TokenRepositoryInterface
}

// NewTokenService creates a new token service.
func NewTokenService(tokenRepo repository.TokenRepositoryInterface, cfg TokenConfig) TokenService {
	return &TokenServiceImpl{
		secretKey:        []byte(cfg.SecretKey),
		refreshSecretKey: []byte(cfg.RefreshSecretKey),
		accessTokenTTL:   cfg.AccessTokenTTL,
		refreshTokenTTL:  cfg.RefreshTokenTTL,
		tokenRepo:        tokenRepo,
	}
}

func (s *TokenServiceImpl) GenerateTokenPair(ctx context.Context, user *model.User) (*dto.TokenPair, error) {
	if user.ID.IsZero() {
		return nil, errors.New("user ID is zero, cannot create token")
	}

	issued := time.Now()
	accessToken, _, err := s.sign(user, s.secretKey, issued, s.accessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.sign(user, s.refreshSecretKey, issued, s.refreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	token := &model.Token{
		UserID:    user.ID,
		Token:     refreshToken,
		Type:      model.TokenTypeRefresh,
		ExpiresAt: refreshExpiresAt,
	}
	if err := s.tokenRepo.Create(ctx, token); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(s.accessTokenTTL.Seconds()),
	}, nil
}

func (s *TokenServiceImpl) ValidateAccessToken(ctx context.Context, tokenString string) (*dto.Claims, error) {
	claims, err := s.parse(tokenString, s.secretKey)
	if err != nil {
		return nil, err
	}

	blacklisted, err := s.tokenRepo.IsBlacklisted(ctx, tokenString)
	if err != nil {
		return nil, fmt.Errorf("check token blacklist: %w", err)
	}
	if blacklisted {
		return nil, ErrTokenBlacklisted
	}

	return &claims.Claims, nil
}

func (s *TokenServiceImpl) ValidateRefreshToken(tokenString string) (*dto.Claims, error) {
	claims, err := s.parse(tokenString, s.refreshSecretKey)
	if err != nil {
		return nil, err
	}
	return &claims.Claims, nil
}

func (s *TokenServiceImpl) InvalidateAccessToken(ctx context.Context, tokenString string) error {
	claims, err := s.parse(tokenString, s.secretKey)
	if err != nil {
		return err
	}

	expiresAt := time.Now().Add(s.accessTokenTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return s.tokenRepo.Create(ctx, &model.Token{
		UserID:    claims.UserID,
		Token:     tokenString,
		Type:      model.TokenTypeBlacklist,
		ExpiresAt: expiresAt,
	})
}

func (s *TokenServiceImpl) InvalidateUserTokens(ctx context.Context, userID primitive.ObjectID) error {
	return s.tokenRepo.DeleteByUserID(ctx, userID, model.TokenTypeRefresh)
}

func (s *TokenServiceImpl) DeleteRefreshToken(ctx context.Context, tokenString string) error {
	return s.tokenRepo.DeleteByToken(ctx, tokenString)
}

func (s *TokenServiceImpl) FindRefreshToken(ctx context.Context, tokenString string) (*model.Token, error) {
	return s.tokenRepo.FindByToken(ctx, tokenString)
}

func (s *TokenServiceImpl) sign(user *model.User, key []byte, issued time.Time, ttl time.Duration) (string, time.Time, error) {
	expiresAt := issued.Add(ttl)
	claims := &ClaimsWithJWT{
		Claims: dto.Claims{
			UserID:  user.ID,
			Email:   user.Email,
			Role:    user.Role,
			Company: user.Company,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			// jti keeps two tokens issued in the same second distinct
			ID:        primitive.NewObjectID().Hex(),
			Subject:   user.ID.Hex(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issued),
			NotBefore: jwt.NewNumericDate(issued),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func (s *TokenServiceImpl) parse(tokenString string, key []byte) (*ClaimsWithJWT, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimsWithJWT{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return key, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*ClaimsWithJWT)
	if !ok || !token.Valid || !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
