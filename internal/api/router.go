package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"scopeworks/pkg/mq"
	"scopeworks/pkg/otel"
	"scopeworks/pkg/rbac"
)

type Router struct {
	Engine *gin.Engine
}

func NewRouter(
	authHandler *AuthHandler,
	scopingHandler *ScopingHandler,
	wbsHandler *WBSHandler,
	adminHandler *AdminHandler,
	jwtSecret string,
	db *pgxpool.Pool,
	publisher *mq.Publisher,
) *Router {
	r := gin.Default()

	r.Use(otel.GinMiddleware())
	r.Use(TraceMiddleware())
	r.Use(MetricsMiddleware())

	// Health endpoints
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.HEAD("/healthz", func(c *gin.Context) {
		c.Status(200)
	})
	r.GET("/readyz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c, 1*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			c.JSON(500, gin.H{"status": "db_not_ready", "error": err.Error()})
			return
		}

		if publisher != nil && !publisher.IsConnected() {
			c.JSON(500, gin.H{"status": "mq_not_ready"})
			return
		}

		c.JSON(200, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Protected
	auth := r.Group("/")
	auth.Use(AuthMiddleware(jwtSecret))
	{
		auth.POST("/scope/analyze", scopingHandler.Analyze)
		auth.POST("/scope/questions", scopingHandler.Questions)
		auth.POST("/scope/match", scopingHandler.Match)
		auth.POST("/scope/match/live", scopingHandler.MatchLive)
		auth.POST("/scope/summary", scopingHandler.Summary)

		auth.POST("/wbs", wbsHandler.Generate)
		auth.GET("/wbs", wbsHandler.List)
		auth.GET("/wbs/:id", wbsHandler.Get)
		auth.GET("/wbs/:id/export", wbsHandler.Export)

		auth.POST("/admin/catalog/refresh",
			RequirePermission(rbac.PermissionRefreshCatalog),
			scopingHandler.RefreshCatalog)
		auth.POST("/admin/outbox/replay",
			RequirePermission(rbac.PermissionReplayOutbox),
			adminHandler.ReplayFailedOutboxEvents)
		auth.POST("/admin/outbox/replay/:id",
			RequirePermission(rbac.PermissionReplayOutbox),
			adminHandler.ReplayOutboxEvent)
	}

	return &Router{Engine: r}
}

func (r *Router) Run(port string) error {
	return r.Engine.Run(port)
}
