package usecase

import (
	"linear-discord-relay/internal/relay"
	pkgLog "linear-discord-relay/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	newLinear relay.LinearFactory
	sender    relay.DiscordSender
	cfg       relay.Config
}

var _ relay.UseCase = (*implUseCase)(nil)

// New creates a new relay UseCase instance.
func New(l pkgLog.Logger, newLinear relay.LinearFactory, sender relay.DiscordSender, cfg relay.Config) *implUseCase {
	return &implUseCase{
		l:         l,
		newLinear: newLinear,
		sender:    sender,
		cfg:       cfg,
	}
}
