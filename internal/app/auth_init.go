// Package app provides authentication initialization.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Zafar-Sheik/roadworks-service/config"
	"github.com/Zafar-Sheik/roadworks-service/internal/service"
)

const seedTimeout = 5 * time.Second

// seedAdmin creates the bootstrap admin account when ADMIN_EMAIL and ADMIN_PASSWORD are set.
// An existing account with that email is left untouched.
func seedAdmin(users service.UserService, auth config.AuthConfig, domain config.DomainConfig) error {
	if users == nil || auth.AdminEmail == "" || auth.AdminPassword == "" {
		return nil
	}

	company := ""
	if len(domain.Companies) > 0 {
		company = domain.Companies[0]
	}

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	created, err := users.EnsureAdmin(ctx, auth.AdminEmail, auth.AdminPassword, company)
	if err != nil {
		return err
	}
	if created {
		log.Info().Str("email", auth.AdminEmail).Str("company", company).Msg("Created bootstrap admin")
	}
	return nil
}
