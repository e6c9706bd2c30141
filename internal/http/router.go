package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/lineboard/lineboard-backend/internal/http/handlers"
	httpMW "github.com/lineboard/lineboard-backend/internal/http/middleware"
	"github.com/lineboard/lineboard-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AuthMiddleware *httpMW.AuthMiddleware
	TracingEnabled bool

	HealthHandler    *httpH.HealthHandler
	DashboardHandler *httpH.DashboardHandler
	TrendHandler     *httpH.TrendHandler
	NoteHandler      *httpH.NoteHandler
}

// NewRouter builds the HTTP surface. Reads are public; every mutation sits
// behind the update-scope token check.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.TracingEnabled {
		r.Use(otelgin.Middleware("lineboard"))
	}
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Dashboard (public reads)
		if cfg.DashboardHandler != nil {
			api.GET("/data/:date", cfg.DashboardHandler.GetData)
			api.GET("/data/:date/snapshot", cfg.DashboardHandler.GetSnapshot)
		}

		// Trend (public reads)
		if cfg.TrendHandler != nil {
			api.GET("/trend/:month", cfg.TrendHandler.GetMonth)
			api.GET("/trend_chart", cfg.TrendHandler.GetChart)
		}

		// Notes (public reads)
		if cfg.NoteHandler != nil {
			api.GET("/notes/:month", cfg.NoteHandler.GetNotes)
		}
	}

	protected := api.Group("/")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireUpdateScope())
		}

		// Dashboard (writes)
		if cfg.DashboardHandler != nil {
			protected.PUT("/data/:date", cfg.DashboardHandler.PutData)
			protected.POST("/data/:date/upload", cfg.DashboardHandler.UploadData)
		}

		// Trend (writes)
		if cfg.TrendHandler != nil {
			protected.PUT("/trend/:month", cfg.TrendHandler.PutMonth)
			protected.POST("/trend/:month/upload", cfg.TrendHandler.UploadMonth)
			protected.PUT("/trend_chart", cfg.TrendHandler.PutChart)
			protected.POST("/trend_chart/upload", cfg.TrendHandler.UploadChart)
		}

		// Notes (writes)
		if cfg.NoteHandler != nil {
			protected.POST("/notes/:month", cfg.NoteHandler.PostNote)
			protected.DELETE("/notes/:month/:id", cfg.NoteHandler.DeleteNote)
		}
	}

	return r
}
