package linear

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/oauth2"
)

// DefaultBaseURL is the Linear API endpoint.
const DefaultBaseURL = "https://api.linear.app"

const userQuery = `query User($id: String!) {
  user(id: $id) {
    id
    name
    url
    avatarUrl
  }
}`

const issueQuery = `query Issue($id: String!) {
  issue(id: $id) {
    id
    title
    url
    assignee {
      id
    }
  }
}`

// Client is the HTTP wrapper for the Linear GraphQL API. A client is
// built per request from the caller-supplied API token and holds no
// other state.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new Linear client authenticated with the given token.
func New(token string) *Client {
	src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	return &Client{
		baseURL:    DefaultBaseURL,
		httpClient: oauth2.NewClient(context.Background(), src),
	}
}

// SetBaseURL overrides the default Linear API URL for testing purposes.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// GetUser fetches a single user by its internal ID.
func (c *Client) GetUser(ctx context.Context, id string) (*User, error) {
	var data struct {
		User *User `json:"user"`
	}
	if err := c.query(ctx, userQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, fmt.Errorf("failed to fetch linear user %s: %w", id, err)
	}
	if data.User == nil {
		return nil, fmt.Errorf("linear user %s not found", id)
	}
	return data.User, nil
}

// GetIssue fetches a single issue by its internal ID.
func (c *Client) GetIssue(ctx context.Context, id string) (*Issue, error) {
	var data struct {
		Issue *Issue `json:"issue"`
	}
	if err := c.query(ctx, issueQuery, map[string]any{"id": id}, &data); err != nil {
		return nil, fmt.Errorf("failed to fetch linear issue %s: %w", id, err)
	}
	if data.Issue == nil {
		return nil, fmt.Errorf("linear issue %s not found", id)
	}
	return data.Issue, nil
}

// query executes one GraphQL request and decodes the data payload into out.
func (c *Client) query(ctx context.Context, query string, variables map[string]any, out any) error {
	url := fmt.Sprintf("%s/graphql", c.baseURL)

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("failed to marshal graphql request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to build graphql request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call linear API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("linear API error %d: %s", resp.StatusCode, string(raw))
	}

	var envelope struct {
		Data   json.RawMessage `json:"data"`
		Errors []graphQLError  `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode linear response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		return fmt.Errorf("linear graphql error: %s", envelope.Errors[0].Message)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to decode linear data payload: %w", err)
	}
	return nil
}
