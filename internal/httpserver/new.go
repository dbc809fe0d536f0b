package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"linear-discord-relay/pkg/log"
)

// WebhookHandler is the delivery surface the server exposes.
type WebhookHandler interface {
	HandleLinearWebhook(c *gin.Context)
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	webhookHandler WebhookHandler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	WebhookHandler WebhookHandler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		webhookHandler: cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.webhookHandler == nil {
		return errors.New("webhook handler is required")
	}
	return nil
}
