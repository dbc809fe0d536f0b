package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"linear-discord-relay/internal/model"
	"linear-discord-relay/pkg/discord"
	"linear-discord-relay/pkg/linear"
)

// identifierFromURL derives the human-readable issue identifier (e.g.
// "ENG-123") from an event URL. Linear URLs carry the identifier as the
// 6th slash-separated segment, optionally followed by a #fragment:
//
//	https://linear.app/<workspace>/issue/ENG-123/<slug>#comment-...
//
// The parse is position-dependent and breaks if Linear ever changes its
// URL path depth.
func identifierFromURL(rawURL string) string {
	parts := strings.Split(rawURL, "/")
	if len(parts) < 6 {
		return ""
	}
	identifier, _, _ := strings.Cut(parts[5], "#")
	return identifier
}

// embedTitle joins the identifier and issue title.
func embedTitle(identifier, title string) string {
	if identifier == "" {
		return title
	}
	return fmt.Sprintf("%s %s", identifier, title)
}

// parseHexColor parses "#RRGGBB" into an int, as Discord expects.
func parseHexColor(s string) (int, bool) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}

// baseEmbed returns an embed pre-filled with brand color and timestamp.
func (uc *implUseCase) baseEmbed() discord.Embed {
	return discord.Embed{
		Color:     uc.cfg.BrandColor,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// teamLink renders the Team field value as a markdown link.
func (uc *implUseCase) teamLink(team model.TeamRef) string {
	return fmt.Sprintf("[%s](%s/team/%s)", team.Name, uc.cfg.LinkBaseURL, team.Key)
}

// userLink renders a user as a markdown link to their profile.
func userLink(u *linear.User) string {
	if u.URL == "" {
		return u.Name
	}
	return fmt.Sprintf("[%s](%s)", u.Name, u.URL)
}

// footerFor builds the embed footer from the acting user.
func footerFor(actor *linear.User) *discord.EmbedFooter {
	return &discord.EmbedFooter{
		Text:    actor.Name,
		IconURL: actor.AvatarURL,
	}
}
