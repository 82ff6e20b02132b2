package router

import (
	"github.com/oksasatya/go-credential-auth/internal/application"
	"github.com/oksasatya/go-credential-auth/internal/container"
	pginfra "github.com/oksasatya/go-credential-auth/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/go-credential-auth/internal/interface/http"
	"github.com/oksasatya/go-credential-auth/internal/router/modules"
)

type AuthModuleDeps struct {
	Repo    *pginfra.UserRepository
	Service *application.Service
	Handler *handlers.AuthHandler
}

func buildAuthDeps(c *container.Container) AuthModuleDeps {
	repo := pginfra.NewUserRepository(c.DB)
	service := application.NewService(repo, c.Hasher, c.Issuer, c.Logger)
	handler := handlers.NewAuthHandler(service, c.Logger)

	return AuthModuleDeps{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry, c *container.Container) {
	authDeps := buildAuthDeps(c)
	r.Add(modules.NewAuthModule(authDeps.Handler))
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(c.DB, c.Logger)))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
