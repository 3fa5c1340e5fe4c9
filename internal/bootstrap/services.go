package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/classpoint/admin-ui/config"
	redisadapter "github.com/classpoint/admin-ui/internal/adapters/redis"
	"github.com/classpoint/admin-ui/internal/api"
	"github.com/classpoint/admin-ui/internal/service"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	API  *api.Client
	Auth *service.AuthService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// BuildServices wires the API client, session store and auth service.
func BuildServices(deps ServiceDeps) (ServiceContainer, error) {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.AppConfig{}
		cfg.Sanitize()
	}

	client, err := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	})
	if err != nil {
		return ServiceContainer{}, fmt.Errorf("build api client: %w", err)
	}

	sessions := redisadapter.NewSessionStoreWithPrefix(deps.RedisClient, cfg.Session.KeyPrefix)

	auth := service.NewAuthService(service.AuthServiceOptions{
		API:        client,
		Sessions:   sessions,
		SessionTTL: cfg.Session.TTL,
	})

	return ServiceContainer{API: client, Auth: auth}, nil
}
