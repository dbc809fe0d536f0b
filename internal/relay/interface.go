package relay

import (
	"context"

	"linear-discord-relay/pkg/discord"
	"linear-discord-relay/pkg/linear"
)

// UseCase defines the business logic interface for the relay domain.
type UseCase interface {
	// Process enriches a classified event against the Linear API,
	// builds the Discord notification, and dispatches it. Enrichment
	// calls are sequential; the first failure aborts the whole request
	// and nothing is dispatched.
	Process(ctx context.Context, input ProcessInput) (ProcessOutput, error)
}

// LinearAPI is the subset of the Linear client used for enrichment.
type LinearAPI interface {
	GetUser(ctx context.Context, id string) (*linear.User, error)
	GetIssue(ctx context.Context, id string) (*linear.Issue, error)
}

// LinearFactory builds an authenticated Linear client from the
// per-request API token.
type LinearFactory func(token string) LinearAPI

// DiscordSender dispatches one notification to a Discord webhook.
type DiscordSender interface {
	Execute(ctx context.Context, webhookID, webhookToken string, msg discord.WebhookMessage) error
}
