package middleware

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zafar-Sheik/roadworks-service/internal/i18n"
	"github.com/Zafar-Sheik/roadworks-service/internal/logger"
)

const (
	// IdempotencyKeyHeader is the HTTP header carrying the client's idempotency key.
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyReplayedHeader marks a response served from the store.
	IdempotencyReplayedHeader = "X-Idempotency-Replayed"
	// DefaultIdempotencyTTL bounds how long a stored response is replayed.
	DefaultIdempotencyTTL = 24 * time.Hour

	idempotencyLockTTL = 30 * time.Second
	maxIdempotencyKey  = 255
)

// CachedResponse is a stored response replayed for a repeated idempotency key.
type CachedResponse struct {
	StatusCode  int    `json:"status_code"`
	ContentType string `json:"content_type"`
	Location    string `json:"location,omitempty"`
	Body        []byte `json:"body"`
}

// IdempotencyStore persists responses by key.
// Reserve returns false when the key is already locked by a request in flight.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (*CachedResponse, bool, error)
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Save(ctx context.Context, key string, resp *CachedResponse, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}

// IdempotencyConfig holds configuration for the idempotency middleware.
type IdempotencyConfig struct {
	Store IdempotencyStore
	TTL   time.Duration
}

// Idempotency replays the stored 2xx response for a repeated Idempotency-Key on write requests.
// Keys are scoped by caller, method, path and body so a key reused with a different payload is a new request.
// Store failures are logged and the request proceeds without replay protection.
func Idempotency(cfg IdempotencyConfig) gin.HandlerFunc {
	if cfg.Store == nil {
		return func(c *gin.Context) { c.Next() }
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultIdempotencyTTL
	}

	return func(c *gin.Context) {
		if !isWriteMethod(c.Request.Method) {
			c.Next()
			return
		}

		idemKey := c.GetHeader(IdempotencyKeyHeader)
		if idemKey == "" || len(idemKey) > maxIdempotencyKey {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		log := logger.WithContext(map[string]interface{}{"request_id": GetRequestID(c)})
		key := idempotencyCacheKey(c, idemKey)

		cached, found, err := cfg.Store.Get(ctx, key)
		if err != nil {
			log.Warn().Err(err).Msg("Idempotency lookup failed")
			c.Next()
			return
		}
		if found {
			replay(c, cached)
			return
		}

		reserved, err := cfg.Store.Reserve(ctx, key, idempotencyLockTTL)
		if err != nil {
			log.Warn().Err(err).Msg("Idempotency reserve failed")
			c.Next()
			return
		}
		if !reserved {
			abortWithError(c, http.StatusConflict, i18n.ErrKeyIdempotencyInFlight)
			return
		}
		defer func() {
			if err := cfg.Store.Release(context.WithoutCancel(ctx), key); err != nil {
				log.Warn().Err(err).Msg("Idempotency release failed")
			}
		}()

		// A request holding the lock may have saved and released between Get and Reserve.
		if cached, found, err := cfg.Store.Get(ctx, key); err == nil && found {
			replay(c, cached)
			return
		}

		writer := &captureWriter{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = writer

		c.Next()

		status := writer.Status()
		if status < 200 || status >= 300 {
			return
		}

		resp := &CachedResponse{
			StatusCode:  status,
			ContentType: writer.Header().Get("Content-Type"),
			Location:    writer.Header().Get("Location"),
			Body:        writer.body.Bytes(),
		}
		if err := cfg.Store.Save(context.WithoutCancel(ctx), key, resp, cfg.TTL); err != nil {
			log.Warn().Err(err).Msg("Idempotency save failed")
		}
	}
}

func isWriteMethod(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	default:
		return false
	}
}

func replay(c *gin.Context, cached *CachedResponse) {
	if cached.Location != "" {
		c.Header("Location", cached.Location)
	}
	c.Header(IdempotencyReplayedHeader, "true")
	contentType := cached.ContentType
	if contentType == "" {
		contentType = "application/json; charset=utf-8"
	}
	c.Data(cached.StatusCode, contentType, cached.Body)
	c.Abort()
}

// idempotencyCacheKey hashes the key with the caller, method, path and request body.
func idempotencyCacheKey(c *gin.Context, idemKey string) string {
	h := sha256.New()
	h.Write([]byte(idemKey))
	h.Write([]byte{0})
	if claims, ok := GetClaims(c); ok {
		h.Write([]byte(claims.UserID.Hex()))
	}
	h.Write([]byte{0})
	h.Write([]byte(c.Request.Method))
	h.Write([]byte(c.Request.URL.Path))

	if c.Request.Body != nil {
		body, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
		h.Write(body)
	}

	return "idempotency:" + hex.EncodeToString(h.Sum(nil))
}

// captureWriter tees the response body for storage.
type captureWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *captureWriter) WriteString(s string) (int, error) {
	w.body.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
