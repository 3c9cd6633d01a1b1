// Package main is the entry point for the roadworks service.
//
// @title           Roadworks Service API
// @version         1.0.0
// @description     Job tracking for road maintenance crews: work orders, pothole repair sheets
// @description     with derived material metrics, job types with pricing formulas, and spreadsheet export.
//
// @contact.name   API Support
// @contact.url    https://github.com/Zafar-Sheik/roadworks-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 JWT access token as "Bearer <token>".
//
// @tag.name        Auth
// @tag.description Login, registration and token refresh
//
// @tag.name        Users
// @tag.description Admin user management
//
// @tag.name        Jobs
// @tag.description Work orders assigned to laborers
//
// @tag.name        Potholes
// @tag.description Pothole repair sheets and export
//
// @tag.name        JobTypes
// @tag.description Job type catalog and formula driven job sheets
//
// @tag.name        Logs
// @tag.description Audit trail
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/Zafar-Sheik/roadworks-service/config"
	_ "github.com/Zafar-Sheik/roadworks-service/docs" // swagger docs
	"github.com/Zafar-Sheik/roadworks-service/internal/app"
)

func main() {
	cfg := config.Load()

	application, err := app.InitializeApp(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize application")
	}

	server := app.NewServer(application.Router, cfg.Server.Port,
		app.WithRequestTimeout(cfg.Server.RequestTimeout),
		app.WithShutdownHook(application.Close),
	)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
