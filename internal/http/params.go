package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/dto"
	"github.com/Zafar-Sheik/roadworks-service/internal/i18n"
	"github.com/Zafar-Sheik/roadworks-service/internal/middleware"
	"github.com/Zafar-Sheik/roadworks-service/internal/query"
	"github.com/Zafar-Sheik/roadworks-service/internal/repository"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

// Paging bounds the limit query parameter of listing endpoints.
type Paging struct {
	DefaultLimit int
	MaxLimit     int
}

// DefaultPaging returns the paging used when none is configured.
func DefaultPaging() Paging {
	return Paging{DefaultLimit: 50, MaxLimit: 500}
}

// listOptions parses limit and offset. A limit above MaxLimit is clamped.
// On a malformed value it writes a 400 and returns false.
func (p Paging) listOptions(c *gin.Context) (repository.ListOptions, bool) {
	limit, ok := nonNegativeParam(c, "limit", p.DefaultLimit)
	if !ok {
		return repository.ListOptions{}, false
	}
	if limit == 0 {
		limit = p.DefaultLimit
	}
	if p.MaxLimit > 0 && limit > p.MaxLimit {
		limit = p.MaxLimit
	}

	offset, ok := nonNegativeParam(c, "offset", 0)
	if !ok {
		return repository.ListOptions{}, false
	}

	return repository.ListOptions{Limit: int64(limit), Skip: int64(offset)}, true
}

func nonNegativeParam(c *gin.Context, name string, def int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidFilter, nil,
			map[string]string{name: "must be a non-negative integer"})
		return 0, false
	}
	return n, true
}

// filterParams returns the query string without the paging parameters.
func filterParams(c *gin.Context) query.Params {
	params := query.ParamsFromValues(c.Request.URL.Query())
	delete(params, "limit")
	delete(params, "offset")
	return params
}

// objectIDParam parses the named path parameter. On a malformed id it writes a 400 and returns false.
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		NewResponseBuilder(c).ErrorWithDetails(http.StatusBadRequest, i18n.ErrKeyInvalidID, nil,
			map[string]string{name: "must be a valid id"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// actorFrom returns the verified caller. Routes using it sit behind JWTAuth,
// so a missing identity is answered with a 401.
func actorFrom(c *gin.Context) (service.Claims, bool) {
	claims, ok := middleware.GetClaims(c)
	if !ok {
		NewResponseBuilder(c).Error(http.StatusUnauthorized, i18n.ErrKeyUnauthorized, nil)
		return service.Claims{}, false
	}
	return *claims, true
}

func listResponse(items interface{}, count int, opts repository.ListOptions) dto.ListResponse {
	return dto.ListResponse{
		Items:  items,
		Count:  count,
		Limit:  int(opts.Limit),
		Offset: int(opts.Skip),
	}
}
