package router

import (
	appuser "github.com/oksasatya/go-user-token-api/internal/application"
	"github.com/oksasatya/go-user-token-api/internal/container"
	pginfra "github.com/oksasatya/go-user-token-api/internal/infrastructure/postgres"
	"github.com/oksasatya/go-user-token-api/internal/infrastructure/redisstore"
	"github.com/oksasatya/go-user-token-api/internal/infrastructure/search"
	handlers "github.com/oksasatya/go-user-token-api/internal/interface/http"
	"github.com/oksasatya/go-user-token-api/internal/router/modules"
)

type UserModuleDeps struct {
	Service *appuser.Service
	Handler *handlers.UserHandler
}

func buildUserDeps() UserModuleDeps {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	service := appuser.NewService(
		pginfra.NewUserRepository(container.GetPGPool()),
		redisstore.NewSessionStore(container.GetRedis(), cfg.AccessTTL),
		container.GetJWT(),
		logger,
	)
	service.AppName = cfg.AppName
	if es := container.GetES(); es != nil {
		service.Indexer = search.NewUserIndexer(es, cfg.ESUsersIndex)
	}
	if pub := container.GetRabbitPub(); pub != nil {
		service.Mail = pub
	}

	return UserModuleDeps{
		Service: service,
		Handler: handlers.NewUserHandler(service, logger),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	userDeps := buildUserDeps()
	r.Add(modules.NewUserModule(userDeps.Handler, userDeps.Service))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
