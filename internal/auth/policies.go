package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"

	"go-intranet-app/internal/logger"
)

// SeedDefaultPolicies ensures the application has a baseline set of
// authorization rules. Each policy is checked before being added, so the
// seeding is idempotent and safe on every start.
func SeedDefaultPolicies(e casbin.IEnforcer, log logger.Logger) {
	log.Info("Seeding default authorization policies...")

	// Anonymous visitors can read everything public and reach the auth
	// endpoints; the admin role owns all mutations.
	policies := [][]string{
		{"anonymous", "/api/categories", "GET"},
		{"anonymous", "/api/categories/*", "GET"},
		{"anonymous", "/api/documents", "GET"},
		{"anonymous", "/api/documents/*", "GET"},
		{"anonymous", "/api/search", "GET"},
		{"anonymous", "/api/quick-links", "GET"},
		{"anonymous", "/api/site-settings", "GET"},
		{"anonymous", "/api/processes", "GET"},
		{"anonymous", "/auth/login", "POST"},
		{"anonymous", "/auth/register", "POST"},
		{"anonymous", "/auth/logout", "POST"},
		{"anonymous", "/auth/me", "GET"},

		{"admin", "/api/categories", "POST"},
		{"admin", "/api/categories/*", "PUT"},
		{"admin", "/api/categories/*", "DELETE"},
		{"admin", "/api/documents", "POST"},
		{"admin", "/api/documents/*", "POST"},
		{"admin", "/api/documents/*", "PUT"},
		{"admin", "/api/documents/*", "DELETE"},
		{"admin", "/api/site-settings", "PUT"},
	}
	for _, p := range policies {
		if has, _ := e.HasPolicy(p); !has {
			if _, err := e.AddPolicy(p); err != nil {
				log.Error(err, fmt.Sprintf("Failed to add policy %v", p))
			}
		}
	}

	// Signed-in roles inherit everything anonymous visitors can do.
	for _, role := range []string{"user", "admin"} {
		if has, _ := e.HasRoleForUser(role, "anonymous"); !has {
			if _, err := e.AddRoleForUser(role, "anonymous"); err != nil {
				log.Error(err, fmt.Sprintf("Failed to add role '%s' -> 'anonymous'", role))
			}
		}
	}
	log.Info("Policy seeding complete.")
}
