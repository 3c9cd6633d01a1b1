// Package model defines the roadworks domain entities stored in MongoDB.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the access level of a user.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleLaborer Role = "laborer"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleLaborer
}

// In reports whether r is one of allowed. An empty allowed list permits any valid role.
func (r Role) In(allowed ...Role) bool {
	if !r.Valid() {
		return false
	}
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if r == a {
			return true
		}
	}
	return false
}

// User represents a crew member or administrator.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"` // Never serialize password
	Role      Role               `bson:"role" json:"role"`
	Company   string             `bson:"company" json:"company"`
	Active    bool               `bson:"active" json:"active"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Token represents a refresh token or blacklisted token.
type Token struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	Token     string             `bson:"token" json:"token"`
	Type      string             `bson:"type" json:"type"` // "refresh" or "blacklist"
	ExpiresAt time.Time          `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

const (
	TokenTypeRefresh   = "refresh"
	TokenTypeBlacklist = "blacklist"
)
