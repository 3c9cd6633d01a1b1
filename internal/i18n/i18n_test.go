package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{name: "english message", key: ErrKeyJobNotFound, locale: "en", expected: "Job not found"},
		{name: "afrikaans message", key: ErrKeyJobNotFound, locale: "af", expected: "Werk nie gevind nie"},
		{name: "empty locale defaults to english", key: ErrKeyInvalidRequest, locale: "", expected: "Invalid request"},
		{name: "unsupported locale falls back to english", key: ErrKeyInvalidMeasurement, locale: "fr", expected: "Dimensions and number of bags must be positive numbers"},
		{name: "unknown key returns key", key: "unknown.key", locale: "en", expected: "unknown.key"},
		{name: "unknown key in unsupported locale", key: "unknown.key", locale: "fr", expected: "unknown.key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestTranslator_EveryKeyTranslated(t *testing.T) {
	messages := getDefaultMessages()
	for key := range messages[DefaultLocale] {
		assert.Contains(t, messages["af"], key, "missing af translation")
	}
	assert.Len(t, messages["af"], len(messages[DefaultLocale]))
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{name: "no header returns default", acceptLanguage: "", expected: DefaultLocale},
		{name: "english header", acceptLanguage: "en", expected: "en"},
		{name: "afrikaans header", acceptLanguage: "af", expected: "af"},
		{name: "full locale with region", acceptLanguage: "af-ZA", expected: "af"},
		{name: "multiple languages", acceptLanguage: "en-ZA,en;q=0.9,af;q=0.8", expected: "en"},
		{name: "unsupported language defaults", acceptLanguage: "zu", expected: DefaultLocale},
		{name: "case insensitive", acceptLanguage: "AF", expected: "af"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = req

			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}
