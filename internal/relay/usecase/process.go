package usecase

import (
	"context"
	"fmt"

	"linear-discord-relay/internal/model"
	"linear-discord-relay/internal/relay"
	"linear-discord-relay/pkg/discord"
	"linear-discord-relay/pkg/linear"
)

// Author labels for the supported recipes.
const (
	labelIssueCreated  = "New issue added"
	labelStatusChanged = "Status changed"
	labelCommentAdded  = "New comment"
)

// MessageSent is the envelope message after a successful dispatch.
const MessageSent = "Notification sent"

// Process routes the event to its (entity, action) recipe. Combinations
// without a recipe are reported as skipped and nothing is dispatched.
func (uc *implUseCase) Process(ctx context.Context, input relay.ProcessInput) (relay.ProcessOutput, error) {
	ev := input.Event

	switch {
	case ev.Entity == model.EntityIssue && ev.Action == model.ActionCreate:
		return uc.processIssueCreate(ctx, input)

	case ev.Entity == model.EntityIssue && ev.Action == model.ActionUpdate:
		// Only status transitions are relayed. Title/description edits
		// arrive with the same shape and stay silent.
		if !ev.StatusChanged {
			return relay.ProcessOutput{Skipped: true, Message: "update does not touch status"}, nil
		}
		return uc.processStatusChange(ctx, input)

	case ev.Entity == model.EntityComment && ev.Action == model.ActionCreate:
		return uc.processCommentCreate(ctx, input)

	default:
		uc.l.Infof(ctx, "relay: no recipe for %s/%s, skipping", ev.Entity, ev.Action)
		return relay.ProcessOutput{Skipped: true, Message: fmt.Sprintf("no recipe for %s/%s", ev.Entity, ev.Action)}, nil
	}
}

// processIssueCreate relays a newly created issue.
func (uc *implUseCase) processIssueCreate(ctx context.Context, input relay.ProcessInput) (relay.ProcessOutput, error) {
	ev := input.Event
	issue := ev.Issue
	api := uc.newLinear(input.Credentials.LinearToken)

	actor, err := api.GetUser(ctx, issue.CreatorID)
	if err != nil {
		return relay.ProcessOutput{}, fmt.Errorf("resolve creator: %w", err)
	}

	var assignee *linear.User
	if issue.AssigneeID != "" {
		assignee, err = api.GetUser(ctx, issue.AssigneeID)
		if err != nil {
			return relay.ProcessOutput{}, fmt.Errorf("resolve assignee: %w", err)
		}
	}

	embed := uc.baseEmbed()
	embed.Title = embedTitle(identifierFromURL(ev.URL), issue.Title)
	embed.URL = ev.URL
	embed.Author = &discord.EmbedAuthor{Name: labelIssueCreated}
	embed.Footer = footerFor(actor)
	embed.Fields = []discord.EmbedField{
		{Name: "Team", Value: uc.teamLink(issue.Team), Inline: true},
		{Name: "Status", Value: issue.State.Name, Inline: true},
	}
	if assignee != nil {
		embed.Fields = append(embed.Fields, discord.EmbedField{
			Name:   "Assignee",
			Value:  userLink(assignee),
			Inline: true,
		})
	}
	if issue.Description != "" {
		embed.Description = issue.Description
	}

	return uc.dispatch(ctx, input.Credentials, uc.mentionFor(actor, assignee), embed)
}

// processStatusChange relays an issue whose workflow state changed. The
// embed color follows the new state instead of the brand color.
func (uc *implUseCase) processStatusChange(ctx context.Context, input relay.ProcessInput) (relay.ProcessOutput, error) {
	ev := input.Event
	issue := ev.Issue
	api := uc.newLinear(input.Credentials.LinearToken)

	actor, err := api.GetUser(ctx, issue.CreatorID)
	if err != nil {
		return relay.ProcessOutput{}, fmt.Errorf("resolve actor: %w", err)
	}

	var assignee *linear.User
	if issue.AssigneeID != "" {
		assignee, err = api.GetUser(ctx, issue.AssigneeID)
		if err != nil {
			return relay.ProcessOutput{}, fmt.Errorf("resolve assignee: %w", err)
		}
	}

	embed := uc.baseEmbed()
	embed.Title = embedTitle(identifierFromURL(ev.URL), issue.Title)
	embed.URL = ev.URL
	embed.Author = &discord.EmbedAuthor{Name: labelStatusChanged}
	embed.Footer = footerFor(actor)
	embed.Description = fmt.Sprintf("Status: **%s**", issue.State.Name)
	if color, ok := parseHexColor(issue.State.Color); ok {
		embed.Color = color
	}

	return uc.dispatch(ctx, input.Credentials, uc.mentionFor(actor, assignee), embed)
}

// processCommentCreate relays a new comment. The parent issue is fetched
// to title the embed and to find the assignee for mention resolution.
func (uc *implUseCase) processCommentCreate(ctx context.Context, input relay.ProcessInput) (relay.ProcessOutput, error) {
	ev := input.Event
	comment := ev.Comment
	api := uc.newLinear(input.Credentials.LinearToken)

	actor, err := api.GetUser(ctx, comment.UserID)
	if err != nil {
		return relay.ProcessOutput{}, fmt.Errorf("resolve author: %w", err)
	}

	issue, err := api.GetIssue(ctx, comment.IssueID)
	if err != nil {
		return relay.ProcessOutput{}, fmt.Errorf("resolve parent issue: %w", err)
	}

	var assignee *linear.User
	if issue.Assignee != nil && issue.Assignee.ID != "" {
		assignee, err = api.GetUser(ctx, issue.Assignee.ID)
		if err != nil {
			return relay.ProcessOutput{}, fmt.Errorf("resolve assignee: %w", err)
		}
	}

	embed := uc.baseEmbed()
	embed.Title = embedTitle(identifierFromURL(ev.URL), issue.Title)
	embed.URL = ev.URL
	embed.Author = &discord.EmbedAuthor{Name: labelCommentAdded}
	embed.Footer = footerFor(actor)
	embed.Description = comment.Body

	return uc.dispatch(ctx, input.Credentials, uc.mentionFor(actor, assignee), embed)
}

// dispatch performs the single outbound webhook call.
func (uc *implUseCase) dispatch(ctx context.Context, creds relay.Credentials, content string, embed discord.Embed) (relay.ProcessOutput, error) {
	msg := discord.WebhookMessage{
		Content:   content,
		Username:  uc.cfg.SenderName,
		AvatarURL: uc.cfg.SenderAvatarURL,
		Embeds:    []discord.Embed{embed},
	}

	if err := uc.sender.Execute(ctx, creds.WebhookID, creds.WebhookToken, msg); err != nil {
		return relay.ProcessOutput{}, fmt.Errorf("dispatch notification: %w", err)
	}

	return relay.ProcessOutput{Message: MessageSent}, nil
}

// mentionFor maps the assignee to a Discord mention. No mention when the
// actor is the assignee (avoid self-notification) or the display name
// has no entry in the table.
func (uc *implUseCase) mentionFor(actor *linear.User, assignee *linear.User) string {
	if assignee == nil || actor == nil || assignee.ID == actor.ID {
		return ""
	}
	id, ok := uc.cfg.Mentions[assignee.Name]
	if !ok {
		return ""
	}
	return fmt.Sprintf("<@%s>", id)
}
