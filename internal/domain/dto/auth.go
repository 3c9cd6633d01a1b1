package dto

import (
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LoginRequest represents the JSON request body for the login endpoint.
//
// @Description Request to authenticate a user
// @Example {"email": "crew1@example.com", "password": "password123"}
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"crew1@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
} // @name LoginRequest

// RegisterRequest represents the JSON request body for self-registration.
// Self-registered accounts are always laborers.
//
// @Description Request to register a new laborer account
// @Example {"email": "crew1@example.com", "password": "password123", "company": "Bombela"}
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email" example:"crew1@example.com"`
	Password string `json:"password" binding:"required,min=6" example:"password123"`
	Company  string `json:"company" binding:"required,company" example:"Bombela"`
} // @name RegisterRequest

// LoginResponse represents the JSON response body for the login endpoint.
//
// @Description Successful authentication response with JWT tokens
type LoginResponse struct {
	Token        string       `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string       `json:"refresh_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresIn    int64        `json:"expires_in" example:"900"`
	User         UserResponse `json:"user"`
} // @name LoginResponse

// TokenPair represents access and refresh tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"` // seconds
}

// Claims is the identity carried in access and refresh tokens.
type Claims struct {
	UserID  primitive.ObjectID `json:"user_id"`
	Email   string             `json:"email"`
	Role    model.Role         `json:"role"`
	Company string             `json:"company"`
}

// UserResponse represents user information in API responses.
type UserResponse struct {
	ID      string     `json:"id" example:"65a1f0c2e4b0a1b2c3d4e5f6"`
	Email   string     `json:"email" example:"crew1@example.com"`
	Role    model.Role `json:"role" example:"laborer"`
	Company string     `json:"company" example:"Bombela"`
	Active  bool       `json:"active" example:"true"`
} // @name UserResponse

// NewUserResponse converts a user to its public representation.
func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:      u.ID.Hex(),
		Email:   u.Email,
		Role:    u.Role,
		Company: u.Company,
		Active:  u.Active,
	}
}
