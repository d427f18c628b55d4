package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"lease-market/internal/handler/api"
	"lease-market/internal/handler/middleware"
	"lease-market/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, leaseHandler *api.LeaseHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, cfg.Server, leaseHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, server config.ServerConfig, leaseHandler *api.LeaseHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/leases"), []route{
			{
				Method:  http.MethodPost,
				Path:    "",
				Handler: leaseHandler.Create,
				Mw:      []gin.HandlerFunc{middleware.BodyLimit(server.MaxBodyBytes)},
			},
		})

		addRoutes(apiGroup.Group("/masters"), []route{
			{Method: http.MethodGet, Path: "/:id", Handler: leaseHandler.GetMaster},
		})

		addRoutes(apiGroup.Group("/resources"), []route{
			{Method: http.MethodGet, Path: "/:id", Handler: leaseHandler.GetResource},
			{Method: http.MethodGet, Path: "/:id/contracts", Handler: leaseHandler.ContractsForResource},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// addRoutes registers each route with its own middleware ahead of the handler.
func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		handlers = append(handlers, r.Mw...)
		handlers = append(handlers, r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
