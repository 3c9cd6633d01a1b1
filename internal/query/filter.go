// Package query turns optional listing parameters into document-store filters.
package query

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind is the type an exact-match parameter is coerced to.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindObjectID
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "boolean"
	case KindObjectID:
		return "object id"
	default:
		return "string"
	}
}

// Operator identifies how a Condition matches its field.
type Operator string

const (
	OpEq       Operator = "eq"
	OpContains Operator = "contains"
	OpIn       Operator = "in"
)

// Condition is a single field predicate.
type Condition struct {
	Field    string
	Operator Operator
	Value    interface{}
}

// Filter is a structured, store-agnostic filter.
// Conditions are ANDed together; each OrGroup is one AND operand whose members are ORed.
type Filter struct {
	Conditions []Condition
	OrGroups   [][]Condition
}

// IsEmpty reports whether the filter matches every record.
func (f Filter) IsEmpty() bool {
	return len(f.Conditions) == 0 && len(f.OrGroups) == 0
}

// With returns a copy of f with an extra equality condition.
func (f Filter) With(field string, value interface{}) Filter {
	out := Filter{
		Conditions: make([]Condition, 0, len(f.Conditions)+1),
		OrGroups:   f.OrGroups,
	}
	for _, c := range f.Conditions {
		if c.Field == field && c.Operator == OpEq {
			continue
		}
		out.Conditions = append(out.Conditions, c)
	}
	out.Conditions = append(out.Conditions, Condition{Field: field, Operator: OpEq, Value: value})
	return out
}

// WithIn returns a copy of f that also requires field to equal one of values.
// An empty values list matches nothing.
func (f Filter) WithIn(field string, values []interface{}) Filter {
	out := Filter{
		Conditions: make([]Condition, 0, len(f.Conditions)+1),
		OrGroups:   f.OrGroups,
	}
	out.Conditions = append(out.Conditions, f.Conditions...)
	if values == nil {
		values = []interface{}{}
	}
	out.Conditions = append(out.Conditions, Condition{Field: field, Operator: OpIn, Value: values})
	return out
}

// Value returns the equality value set for field, if any.
func (f Filter) Value(field string) (interface{}, bool) {
	for _, c := range f.Conditions {
		if c.Field == field && c.Operator == OpEq {
			return c.Value, true
		}
	}
	return nil, false
}

// BSON renders the filter for the MongoDB driver. An empty filter renders as bson.M{}.
func (f Filter) BSON() bson.M {
	clauses := make([]bson.M, 0, len(f.Conditions)+len(f.OrGroups))
	for _, c := range f.Conditions {
		clauses = append(clauses, bson.M{c.Field: c.bsonValue()})
	}
	for _, group := range f.OrGroups {
		alternatives := make([]bson.M, 0, len(group))
		for _, c := range group {
			alternatives = append(alternatives, bson.M{c.Field: c.bsonValue()})
		}
		clauses = append(clauses, bson.M{"$or": alternatives})
	}

	merged := bson.M{}
	for _, clause := range clauses {
		for k, v := range clause {
			if _, dup := merged[k]; dup {
				return bson.M{"$and": clauses}
			}
			merged[k] = v
		}
	}
	return merged
}

func (c Condition) bsonValue() interface{} {
	switch c.Operator {
	case OpContains:
		return primitive.Regex{Pattern: regexp.QuoteMeta(fmt.Sprint(c.Value)), Options: "i"}
	case OpIn:
		return bson.M{"$in": c.Value}
	default:
		return c.Value
	}
}

// ValidationError reports a parameter whose value cannot be coerced to its field type.
type ValidationError struct {
	Param string
	Value string
	Kind  Kind
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for %s: expected %s", e.Value, e.Param, e.Kind)
}

// Params maps a request parameter name to its raw value.
type Params map[string]string

// ParamsFromValues takes the first value of each query string key.
func ParamsFromValues(values url.Values) Params {
	p := make(Params, len(values))
	for k, v := range values {
		if len(v) > 0 {
			p[k] = v[0]
		}
	}
	return p
}

type exactField struct {
	param string
	field string
	kind  Kind
}

// Builder builds Filters for one listing endpoint.
type Builder struct {
	searchParam  string
	searchFields []string
	exact        []exactField
}

// Option configures a Builder.
type Option func(*Builder)

// NewBuilder creates a Builder from the given options.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// WithSearch makes param a case-insensitive substring search across fields.
func WithSearch(param string, fields ...string) Option {
	return func(b *Builder) {
		b.searchParam = param
		b.searchFields = append([]string(nil), fields...)
	}
}

// WithExact makes param an equality match on field, coerced to kind.
func WithExact(param, field string, kind Kind) Option {
	return func(b *Builder) {
		b.exact = append(b.exact, exactField{param: param, field: field, kind: kind})
	}
}

// Build converts params into a Filter. Absent or blank parameters add no condition.
// Unrecognized parameters are ignored.
func (b *Builder) Build(params Params) (Filter, error) {
	var f Filter

	if b.searchParam != "" && len(b.searchFields) > 0 {
		if term := strings.TrimSpace(params[b.searchParam]); term != "" {
			group := make([]Condition, 0, len(b.searchFields))
			for _, field := range b.searchFields {
				group = append(group, Condition{Field: field, Operator: OpContains, Value: term})
			}
			f.OrGroups = append(f.OrGroups, group)
		}
	}

	for _, ef := range b.exact {
		raw := strings.TrimSpace(params[ef.param])
		if raw == "" {
			continue
		}
		value, err := coerce(raw, ef.kind)
		if err != nil {
			return Filter{}, &ValidationError{Param: ef.param, Value: raw, Kind: ef.kind}
		}
		f.Conditions = append(f.Conditions, Condition{Field: ef.field, Operator: OpEq, Value: value})
	}

	return f, nil
}

func coerce(raw string, kind Kind) (interface{}, error) {
	switch kind {
	case KindBool:
		return strconv.ParseBool(raw)
	case KindObjectID:
		return primitive.ObjectIDFromHex(raw)
	default:
		return raw, nil
	}
}
