package app

import (
	"github.com/gin-gonic/gin"

	"github.com/lineboard/lineboard-backend/internal/http"
	httpH "github.com/lineboard/lineboard-backend/internal/http/handlers"
	httpMW "github.com/lineboard/lineboard-backend/internal/http/middleware"
	"github.com/lineboard/lineboard-backend/internal/observability"
	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health    *httpH.HealthHandler
	Dashboard *httpH.DashboardHandler
	Trend     *httpH.TrendHandler
	Note      *httpH.NoteHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:    httpH.NewHealthHandler(),
		Dashboard: httpH.NewDashboardHandler(log, services.Dashboard),
		Trend:     httpH.NewTrendHandler(log, services.Trend),
		Note:      httpH.NewNoteHandler(log, services.Notes),
	}
}

func wireMiddleware(log *logger.Logger, cfg Config) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, cfg.JWTSecretKey),
	}
}

func wireRouter(log *logger.Logger, handlers Handlers, middleware Middleware) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:            log,
		AuthMiddleware: middleware.Auth,
		TracingEnabled: observability.Enabled(),

		HealthHandler:    handlers.Health,
		DashboardHandler: handlers.Dashboard,
		TrendHandler:     handlers.Trend,
		NoteHandler:      handlers.Note,
	})
}
