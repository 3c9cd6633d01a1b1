package middleware

import (
	"sync"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type recordingSink struct {
	mu      sync.Mutex
	entries []*model.LogEntry
}

func (s *recordingSink) Log(entry *model.LogEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
	return true
}

func (s *recordingSink) all() []*model.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*model.LogEntry(nil), s.entries...)
}

func testClaims(role model.Role) *dto.Claims {
	return &dto.Claims{
		UserID:  primitive.NewObjectID(),
		Email:   "crew1@example.com",
		Role:    role,
		Company: "Bombela",
	}
}

// withClaims simulates a successful JWTAuth.
func withClaims(claims *dto.Claims) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
