// Package app provides logger initialization.
package app

import (
	"github.com/Zafar-Sheik/roadworks-service/config"
	"github.com/Zafar-Sheik/roadworks-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from the logging configuration.
func InitializeLogger(cfg config.LoggingConfig) {
	level := cfg.Level
	if level == "" {
		level = "info"
	}
	logger.Init(logger.Options{
		Level:      level,
		Pretty:     cfg.Pretty,
		File:       cfg.File,
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAgeDays: cfg.MaxAgeDays,
	})
}
