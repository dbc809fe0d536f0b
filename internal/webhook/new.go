package webhook

import (
	"linear-discord-relay/internal/relay"
	pkgLog "linear-discord-relay/pkg/log"
)

type Handler struct {
	relayUC  relay.UseCase
	security *SecurityValidator
	parser   *LinearWebhookParser
	devMode  bool
	l        pkgLog.Logger
}

// NewHandler wires the webhook delivery layer. devMode disables the
// source IP check for local development.
func NewHandler(
	relayUC relay.UseCase,
	securityConfig SecurityConfig,
	devMode bool,
	l pkgLog.Logger,
) *Handler {
	return &Handler{
		relayUC:  relayUC,
		security: NewSecurityValidator(securityConfig),
		parser:   NewLinearParser(),
		devMode:  devMode,
		l:        l,
	}
}
