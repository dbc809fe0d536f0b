package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"linear-discord-relay/config"
	_ "linear-discord-relay/docs" // Swagger docs
	"linear-discord-relay/internal/httpserver"
	"linear-discord-relay/internal/model"
	"linear-discord-relay/internal/relay"
	"linear-discord-relay/internal/relay/usecase"
	"linear-discord-relay/internal/webhook"
	"linear-discord-relay/pkg/discord"
	"linear-discord-relay/pkg/linear"
	"linear-discord-relay/pkg/log"
)

// @title       Linear Discord Relay API
// @description Receives Linear webhooks, enriches them via the Linear GraphQL API, and forwards Discord embed notifications.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Linear Discord Relay...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Relay domain
	sender := discord.NewClient()
	if cfg.Discord.WebhookBaseURL != "" {
		sender.SetBaseURL(cfg.Discord.WebhookBaseURL)
	}

	newLinear := func(token string) relay.LinearAPI {
		client := linear.New(token)
		if cfg.Linear.APIURL != "" {
			client.SetBaseURL(cfg.Linear.APIURL)
		}
		return client
	}

	relayCfg := relay.Config{
		BrandColor:      relay.ParseBrandColor(cfg.Discord.BrandColor),
		SenderName:      cfg.Discord.SenderName,
		SenderAvatarURL: cfg.Discord.SenderAvatarURL,
		LinkBaseURL:     cfg.Linear.LinkBaseURL,
		Mentions:        cfg.Webhook.Mentions,
	}
	relayUC := usecase.New(logger, newLinear, sender, relayCfg)

	devMode := cfg.Environment.Name == string(model.EnvironmentDevelopment)
	if devMode {
		logger.Warn(ctx, "Development mode: IP allow-list disabled")
	}

	webhookHandler := webhook.NewHandler(relayUC, webhook.SecurityConfig{
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	}, devMode, logger)

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		WebhookHandler: webhookHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
