package service

import (
	"errors"

	"github.com/Zafar-Sheik/roadworks-service/internal/domain/model"
	"github.com/Zafar-Sheik/roadworks-service/internal/metrics"
	"github.com/Zafar-Sheik/roadworks-service/internal/query"
)

// Listing filters accepted by each resource.
var (
	userFilters = query.NewBuilder(
		query.WithSearch("search", "email", "company"),
		query.WithExact("role", "role", query.KindString),
		query.WithExact("company", "company", query.KindString),
		query.WithExact("active", "active", query.KindBool),
	)

	jobFilters = query.NewBuilder(
		query.WithSearch("search", "name", "company", "jobType"),
		query.WithExact("userId", "user", query.KindString),
		query.WithExact("company", "company", query.KindString),
		query.WithExact("isComplete", "isComplete", query.KindBool),
		query.WithExact("isActive", "isActive", query.KindBool),
		query.WithExact("isContractorSignature", "isContractorSignature", query.KindBool),
		query.WithExact("isEngineerSignature", "isEngineerSignature", query.KindBool),
	)

	// userJobFilters serves /users/:id/jobs, where the owner comes from the path.
	userJobFilters = query.NewBuilder(
		query.WithSearch("search", "name", "company", "jobType"),
		query.WithExact("isComplete", "isComplete", query.KindBool),
	)

	potholeFilters = query.NewBuilder(
		query.WithSearch("search", "weather"),
		query.WithExact("job", "job", query.KindObjectID),
	)

	jobSheetFilters = query.NewBuilder(
		query.WithExact("jobType", "jobType", query.KindObjectID),
		query.WithExact("userId", "user", query.KindObjectID),
		query.WithExact("company", "company", query.KindString),
	)

	logFilters = query.NewBuilder(
		query.WithSearch("search", "message", "path", "user_email"),
		query.WithExact("action", "action_type", query.KindString),
		query.WithExact("userId", "user_id", query.KindString),
		query.WithExact("requestId", "request_id", query.KindString),
		query.WithExact("level", "level", query.KindString),
	)
)

// buildFilter runs b and counts rejected parameters per resource.
func buildFilter(resource string, b *query.Builder, params query.Params) (query.Filter, error) {
	f, err := b.Build(params)
	if err != nil {
		var ve *query.ValidationError
		if errors.As(err, &ve) {
			metrics.RecordFilterRejection(resource, ve.Param)
		}
		return query.Filter{}, err
	}
	return f, nil
}

func isAdmin(actor Claims) bool {
	return actor.Role.In(model.RoleAdmin)
}
