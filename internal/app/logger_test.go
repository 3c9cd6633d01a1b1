//go:build !integration

package app

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/Zafar-Sheik/roadworks-service/config"
)

func TestInitializeLogger(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.LoggingConfig
		expected zerolog.Level
	}{
		{name: "empty level defaults to info", cfg: config.LoggingConfig{}, expected: zerolog.InfoLevel},
		{name: "debug", cfg: config.LoggingConfig{Level: "debug"}, expected: zerolog.DebugLevel},
		{name: "pretty warn", cfg: config.LoggingConfig{Level: "warn", Pretty: true}, expected: zerolog.WarnLevel},
		{
			name: "rotating file",
			cfg: config.LoggingConfig{
				Level:      "error",
				File:       filepath.Join(t.TempDir(), "roadworks.log"),
				MaxSizeMB:  1,
				MaxBackups: 1,
				MaxAgeDays: 1,
			},
			expected: zerolog.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() { InitializeLogger(tt.cfg) })
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}
