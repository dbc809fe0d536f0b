package webhook

import (
	"encoding/json"

	"linear-discord-relay/internal/model"
)

// LinearWebhookParser validates Linear webhook payloads and classifies
// them into the supported (entity, action) variants.
type LinearWebhookParser struct{}

func NewLinearParser() *LinearWebhookParser {
	return &LinearWebhookParser{}
}

// linearEnvelope is the outer shape every Linear delivery shares.
type linearEnvelope struct {
	Action      string                     `json:"action"`
	Type        string                     `json:"type"`
	URL         string                     `json:"url"`
	Data        json.RawMessage            `json:"data"`
	UpdatedFrom map[string]json.RawMessage `json:"updatedFrom"`
}

// Parse classifies a raw payload. Payloads that match no supported
// schema return ErrUnsupportedEvent; a matched schema with missing
// required fields returns a *PayloadError listing every issue.
func (p *LinearWebhookParser) Parse(payload []byte) (*model.WebhookEvent, error) {
	var envelope linearEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, &PayloadError{Issues: []string{"body is not a valid JSON object"}}
	}

	switch model.EntityType(envelope.Type) {
	case model.EntityIssue:
		switch model.ActionType(envelope.Action) {
		case model.ActionCreate, model.ActionUpdate:
			return p.parseIssue(envelope)
		}
	case model.EntityComment:
		if model.ActionType(envelope.Action) == model.ActionCreate {
			return p.parseComment(envelope)
		}
	}

	return nil, ErrUnsupportedEvent
}

// parseIssue handles Issue/create and Issue/update payloads.
func (p *LinearWebhookParser) parseIssue(envelope linearEnvelope) (*model.WebhookEvent, error) {
	var data struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		CreatorID   string `json:"creatorId"`
		AssigneeID  string `json:"assigneeId"`
		Team        struct {
			Key  string `json:"key"`
			Name string `json:"name"`
		} `json:"team"`
		State struct {
			ID    string `json:"id"`
			Name  string `json:"name"`
			Color string `json:"color"`
		} `json:"state"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, &PayloadError{Issues: []string{"data is not a valid issue object"}}
	}

	var issues []string
	if data.CreatorID == "" {
		issues = append(issues, "data.creatorId is required")
	}
	if envelope.URL == "" {
		issues = append(issues, "url is required")
	}
	if data.Team.Key == "" || data.Team.Name == "" {
		issues = append(issues, "data.team key and name are required")
	}
	if data.State.Name == "" {
		issues = append(issues, "data.state.name is required")
	}

	action := model.ActionType(envelope.Action)
	if action == model.ActionUpdate && envelope.UpdatedFrom == nil {
		issues = append(issues, "updatedFrom is required for update events")
	}
	if len(issues) > 0 {
		return nil, &PayloadError{Issues: issues}
	}

	_, statusChanged := envelope.UpdatedFrom["stateId"]

	return &model.WebhookEvent{
		Entity:        model.EntityIssue,
		Action:        action,
		URL:           envelope.URL,
		StatusChanged: action == model.ActionUpdate && statusChanged,
		Issue: &model.IssueData{
			ID:          data.ID,
			Title:       data.Title,
			Description: data.Description,
			CreatorID:   data.CreatorID,
			AssigneeID:  data.AssigneeID,
			Team:        model.TeamRef{Key: data.Team.Key, Name: data.Team.Name},
			State:       model.StateRef{ID: data.State.ID, Name: data.State.Name, Color: data.State.Color},
		},
	}, nil
}

// parseComment handles Comment/create payloads.
func (p *LinearWebhookParser) parseComment(envelope linearEnvelope) (*model.WebhookEvent, error) {
	var data struct {
		ID      string `json:"id"`
		Body    string `json:"body"`
		IssueID string `json:"issueId"`
		UserID  string `json:"userId"`
		Issue   struct {
			ID    string `json:"id"`
			Title string `json:"title"`
		} `json:"issue"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, &PayloadError{Issues: []string{"data is not a valid comment object"}}
	}

	var issues []string
	if data.UserID == "" {
		issues = append(issues, "data.userId is required")
	}
	if data.IssueID == "" {
		issues = append(issues, "data.issueId is required")
	}
	if data.Issue.Title == "" {
		issues = append(issues, "data.issue.title is required")
	}
	if data.Body == "" {
		issues = append(issues, "data.body is required")
	}
	if envelope.URL == "" {
		issues = append(issues, "url is required")
	}
	if len(issues) > 0 {
		return nil, &PayloadError{Issues: issues}
	}

	return &model.WebhookEvent{
		Entity: model.EntityComment,
		Action: model.ActionCreate,
		URL:    envelope.URL,
		Comment: &model.CommentData{
			ID:         data.ID,
			Body:       data.Body,
			IssueID:    data.IssueID,
			IssueTitle: data.Issue.Title,
			UserID:     data.UserID,
		},
	}, nil
}
