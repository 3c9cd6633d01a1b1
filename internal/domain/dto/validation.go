package dto

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// CompanyTag is the binding tag that restricts a field to the configured companies.
const CompanyTag = "company"

// RegisterValidators installs the custom binding tags on v.
func RegisterValidators(v *validator.Validate, companies []string) error {
	allowed := make(map[string]struct{}, len(companies))
	for _, c := range companies {
		allowed[c] = struct{}{}
	}
	return v.RegisterValidation(CompanyTag, func(fl validator.FieldLevel) bool {
		_, ok := allowed[fl.Field().String()]
		return ok
	})
}

// ValidationDetails maps each failing field to a short reason.
// It returns nil when err is not a validation failure.
func ValidationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			details[jsonPath(fe)] = reason(fe)
		}
		return details
	}

	var ve *ValidationError
	if errors.As(err, &ve) {
		return map[string]string{ve.Field: ve.Message}
	}
	return nil
}

func jsonPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	if ns == "" {
		return fe.Field()
	}
	return lowerFirst(ns)
}

func lowerFirst(s string) string {
	parts := strings.Split(s, ".")
	for i, p := range parts {
		if p != "" {
			parts[i] = strings.ToLower(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, ".")
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case CompanyTag:
		return "is not a known company"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		return "must have at least " + fe.Param()
	case "max":
		return "must have at most " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
