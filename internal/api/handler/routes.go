package handler

import (
	"net/http"

	"github.com/marketpulse/marketpulse-api/infrastructure/repository"
	"github.com/marketpulse/marketpulse-api/internal/api/handler/router"
	"github.com/marketpulse/marketpulse-api/internal/config"
	"github.com/marketpulse/marketpulse-api/internal/usecases/analyzing"
	"github.com/marketpulse/marketpulse-api/internal/usecases/authenticating"
	"github.com/marketpulse/marketpulse-api/internal/usecases/connecting"
	"github.com/marketpulse/marketpulse-api/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Connections(service connecting.Connector) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/connections",
			Method:  http.MethodGet,
			Handler: ListConnections(service),
		},
		{
			Path:    "/v1/connections/:platform",
			Method:  http.MethodPost,
			Handler: BeginConnection(service),
		},
		{
			Path:    "/v1/connections/:platform/callback",
			Method:  http.MethodPost,
			Handler: CompleteConnection(service),
		},
		{
			Path:    "/v1/connections/:platform",
			Method:  http.MethodDelete,
			Handler: Disconnect(service),
		},
	}
}

func Sync(cfg *config.Config, service syncing.Syncer, syncRepo repository.SyncEventRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync",
			Method:  http.MethodPost,
			Handler: SyncAll(cfg, service),
		},
		{
			Path:    "/v1/sync/history",
			Method:  http.MethodGet,
			Handler: SyncHistory(syncRepo),
		},
		{
			Path:    "/v1/sync/:platform",
			Method:  http.MethodPost,
			Handler: SyncPlatform(cfg, service),
		},
	}
}

func Sales(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(service),
		},
		{
			Path:    "/v1/stats",
			Method:  http.MethodGet,
			Handler: GetStats(service),
		},
	}
}
