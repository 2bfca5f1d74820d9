package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouteRegistrar is implemented by every handler group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// NewRouter assembles the gin engine: /metrics and /healthz are open, the
// /v1 API sits behind the auth middleware.
func NewRouter(authMiddleware gin.HandlerFunc, registrars ...RouteRegistrar) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/v1")
	api.Use(authMiddleware)
	for _, registrar := range registrars {
		registrar.RegisterRoutes(api)
	}
	return engine
}
