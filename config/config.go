package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Relay specifics
	Linear  LinearConfig
	Discord DiscordConfig
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LinearConfig configures the source-tracker side of the relay.
type LinearConfig struct {
	APIURL      string // override for tests; empty means the public API
	LinkBaseURL string // base for identifier links in embeds
}

// DiscordConfig configures the outbound notification.
type DiscordConfig struct {
	WebhookBaseURL  string // override for tests; empty means discord.com
	SenderName      string
	SenderAvatarURL string
	BrandColor      string // hex string, e.g. "#5E6AD2"
}

// WebhookConfig configures the inbound request gate.
type WebhookConfig struct {
	AllowedIPs      []string
	RateLimitPerMin int
	// Mentions maps Linear display names to Discord user ids for
	// assignee @-mentions. Loaded once, never mutated.
	Mentions map[string]string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Linear
	cfg.Linear.APIURL = viper.GetString("linear.api_url")
	cfg.Linear.LinkBaseURL = viper.GetString("linear.link_base_url")

	// Discord
	cfg.Discord.WebhookBaseURL = viper.GetString("discord.webhook_base_url")
	cfg.Discord.SenderName = viper.GetString("discord.sender_name")
	cfg.Discord.SenderAvatarURL = viper.GetString("discord.sender_avatar_url")
	cfg.Discord.BrandColor = viper.GetString("discord.brand_color")

	// Webhook gate
	cfg.Webhook.AllowedIPs = viper.GetStringSlice("webhook.allowed_ips")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")
	cfg.Webhook.Mentions = viper.GetStringMapString("webhook.mentions")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Webhook.RateLimitPerMin <= 0 {
		return fmt.Errorf("webhook.rate_limit_per_min must be positive")
	}
	if cfg.Discord.SenderName == "" {
		return fmt.Errorf("discord.sender_name is required")
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("linear.link_base_url", "https://linear.app")

	viper.SetDefault("discord.sender_name", "Linear")
	viper.SetDefault("discord.sender_avatar_url", "https://cdn.linear.app/client/assets/favicon.png")
	viper.SetDefault("discord.brand_color", "#5E6AD2")

	// Linear's published webhook egress IPs.
	viper.SetDefault("webhook.allowed_ips", []string{"35.231.147.226", "35.243.134.228"})
	viper.SetDefault("webhook.rate_limit_per_min", 120)
	viper.SetDefault("webhook.mentions", map[string]string{})
}
