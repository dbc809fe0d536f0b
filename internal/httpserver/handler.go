package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"linear-discord-relay/internal/middleware"
	"linear-discord-relay/pkg/response"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	mw := middleware.New(srv.l)
	srv.gin.Use(mw.RequestID())

	// The webhook contract is POST-only; anything else gets 405 inside
	// the standard envelope.
	srv.gin.HandleMethodNotAllowed = true
	srv.gin.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})
	srv.gin.NoRoute(func(c *gin.Context) {
		response.NotFound(c)
	})
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers the relay routes.
func (srv HTTPServer) registerDomainRoutes() {
	ctx := context.Background()

	srv.gin.POST("/webhook/linear", srv.webhookHandler.HandleLinearWebhook)
	srv.l.Infof(ctx, "Linear webhook route registered at POST /webhook/linear")
}
