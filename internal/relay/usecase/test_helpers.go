package usecase

import (
	"context"
	"errors"

	"linear-discord-relay/internal/relay"
	"linear-discord-relay/pkg/discord"
	"linear-discord-relay/pkg/linear"
)

var errNotFound = errors.New("entity not found")

// Fake Linear API for testing. Lookups are served from fixed maps; a
// missing id yields Err.
type fakeLinearAPI struct {
	Users  map[string]*linear.User
	Issues map[string]*linear.Issue
	Err    error
	Calls  []string
}

func (f *fakeLinearAPI) GetUser(_ context.Context, id string) (*linear.User, error) {
	f.Calls = append(f.Calls, "user:"+id)
	if f.Err != nil {
		return nil, f.Err
	}
	if u, ok := f.Users[id]; ok {
		return u, nil
	}
	return nil, errNotFound
}

func (f *fakeLinearAPI) GetIssue(_ context.Context, id string) (*linear.Issue, error) {
	f.Calls = append(f.Calls, "issue:"+id)
	if f.Err != nil {
		return nil, f.Err
	}
	if i, ok := f.Issues[id]; ok {
		return i, nil
	}
	return nil, errNotFound
}

// Fake Discord sender that records every dispatched message.
type fakeSender struct {
	Err      error
	Messages []discord.WebhookMessage
	IDs      []string
	Tokens   []string
}

func (f *fakeSender) Execute(_ context.Context, webhookID, webhookToken string, msg discord.WebhookMessage) error {
	if f.Err != nil {
		return f.Err
	}
	f.Messages = append(f.Messages, msg)
	f.IDs = append(f.IDs, webhookID)
	f.Tokens = append(f.Tokens, webhookToken)
	return nil
}

func fakeFactory(api *fakeLinearAPI) relay.LinearFactory {
	return func(string) relay.LinearAPI { return api }
}
