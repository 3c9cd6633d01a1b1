// Package i18n provides internationalization support for the roadworks service.
// It handles translation of user-facing messages and error messages.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the translated message for the given key and locale.
// Falls back to DefaultLocale if the locale is not found.
func (t *Translator) Translate(key, locale string) string {
	if locale == "" {
		locale = DefaultLocale
	}

	localeMessages, ok := t.messages[locale]
	if !ok {
		localeMessages = t.messages[DefaultLocale]
	}

	msg, ok := localeMessages[key]
	if !ok {
		// Fallback to default locale
		if defaultMessages := t.messages[DefaultLocale]; defaultMessages != nil {
			if fallbackMsg, exists := defaultMessages[key]; exists {
				return fallbackMsg
			}
		}
		return key
	}

	return msg
}

// GetLocale extracts the locale from the gin context.
// Checks Accept-Language header and falls back to DefaultLocale.
func GetLocale(c *gin.Context) string {
	acceptLang := c.GetHeader(AcceptLanguageHeader)
	if acceptLang == "" {
		return DefaultLocale
	}

	// Parse Accept-Language header (e.g., "en-US,en;q=0.9,pt;q=0.8")
	parts := strings.Split(acceptLang, ",")
	if len(parts) > 0 {
		lang := strings.TrimSpace(strings.Split(parts[0], ";")[0])
		// Extract base language (e.g., "en" from "en-US")
		if idx := strings.Index(lang, "-"); idx > 0 {
			lang = lang[:idx]
		}
		// Normalize to lowercase
		lang = strings.ToLower(lang)
		// Validate it's a supported locale
		if _, ok := GetTranslator().messages[lang]; ok {
			return lang
		}
	}

	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			"error.invalid_request":         "Invalid request",
			"error.invalid_request_body":    "Invalid request body",
			"error.internal_error":          "An unexpected error occurred",
			"error.unauthorized":            "Unauthorized",
			"error.invalid_credentials":     "Invalid email or password",
			"error.forbidden":               "You do not have access to this resource",
			"error.not_found":               "Not found",
			"error.rate_limit_exceeded":     "Too many requests, please try again later",
			"error.conflict":                "Conflict",
			"error.invalid_token":           "Invalid or expired token",
			"error.token_required":          "Authentication token is required",
			"error.timeout":                 "The request took too long to complete",
			"error.service_unavailable":     "Service temporarily unavailable, please try again later",
			"error.idempotency_in_flight":   "A request with this idempotency key is still being processed",
			"error.invalid_id":              "Invalid id",
			"error.invalid_filter":          "Invalid filter value",
			"error.user_exists":             "A user with this email already exists",
			"error.user_not_found":          "User not found",
			"error.job_not_found":           "Job not found",
			"error.assignee_not_found":      "The assigned user does not exist",
			"error.invalid_measurement":     "Dimensions and number of bags must be positive numbers",
			"error.pothole_not_found":       "Pothole sheet not found",
			"error.job_type_not_found":      "Job type not found",
			"error.job_type_exists":         "A job type with this name already exists",
			"error.unknown_formula":         "Unknown formula",
			"error.missing_input":           "A required input is missing",
		},
		"af": {
			"error.invalid_request":         "Ongeldige versoek",
			"error.invalid_request_body":    "Ongeldige versoekinhoud",
			"error.internal_error":          "'n Onverwagte fout het voorgekom",
			"error.unauthorized":            "Nie gemagtig nie",
			"error.invalid_credentials":     "Ongeldige e-pos of wagwoord",
			"error.forbidden":               "Jy het nie toegang tot hierdie hulpbron nie",
			"error.not_found":               "Nie gevind nie",
			"error.rate_limit_exceeded":     "Te veel versoeke, probeer asseblief later weer",
			"error.conflict":                "Konflik",
			"error.invalid_token":           "Ongeldige of verstreke token",
			"error.token_required":          "Verifikasietoken word vereis",
			"error.timeout":                 "Die versoek het te lank geneem",
			"error.service_unavailable":     "Diens tydelik onbeskikbaar, probeer asseblief later weer",
			"error.idempotency_in_flight":   "'n Versoek met hierdie idempotensiesleutel word nog verwerk",
			"error.invalid_id":              "Ongeldige id",
			"error.invalid_filter":          "Ongeldige filterwaarde",
			"error.user_exists":             "'n Gebruiker met hierdie e-pos bestaan reeds",
			"error.user_not_found":          "Gebruiker nie gevind nie",
			"error.job_not_found":           "Werk nie gevind nie",
			"error.assignee_not_found":      "Die toegewese gebruiker bestaan nie",
			"error.invalid_measurement":     "Afmetings en aantal sakke moet positiewe getalle wees",
			"error.pothole_not_found":       "Slaggatblad nie gevind nie",
			"error.job_type_not_found":      "Werksoort nie gevind nie",
			"error.job_type_exists":         "'n Werksoort met hierdie naam bestaan reeds",
			"error.unknown_formula":         "Onbekende formule",
			"error.missing_input":           "'n Vereiste invoer ontbreek",
		},
	}
}
