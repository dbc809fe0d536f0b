package relay

import (
	"strconv"
	"strings"

	"linear-discord-relay/internal/model"
)

// DefaultBrandColor is used when no valid brand color is configured.
const DefaultBrandColor = 0x5E6AD2

// ParseBrandColor parses a "#RRGGBB" hex string into the int form
// Discord expects, falling back to DefaultBrandColor on bad input.
func ParseBrandColor(s string) int {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return DefaultBrandColor
	}
	v, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return DefaultBrandColor
	}
	return int(v)
}

// Credentials are the caller-supplied query parameters. They live for
// one request only: the Linear token builds the API client, the webhook
// id/token pair addresses the Discord webhook.
type Credentials struct {
	WebhookID    string
	WebhookToken string
	LinearToken  string
}

// ProcessInput is the input for processing one classified event.
type ProcessInput struct {
	Event       model.WebhookEvent
	Credentials Credentials
}

// ProcessOutput is the result of processing one event.
type ProcessOutput struct {
	Skipped bool   // schema-valid event with no matching recipe; nothing dispatched
	Message string // summary for the response envelope
}

// Config holds the static notification settings, loaded once at startup.
type Config struct {
	BrandColor      int
	SenderName      string
	SenderAvatarURL string
	LinkBaseURL     string
	// Mentions maps a Linear display name to a Discord user id. The
	// table is immutable after startup; a missing entry just means no
	// mention is added.
	Mentions map[string]string
}
