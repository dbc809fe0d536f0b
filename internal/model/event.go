package model

// EntityType is the kind of object a webhook event concerns.
type EntityType string

const (
	EntityIssue   EntityType = "Issue"
	EntityComment EntityType = "Comment"
)

// ActionType is the lifecycle action on that entity.
type ActionType string

const (
	ActionCreate ActionType = "create"
	ActionUpdate ActionType = "update"
)

// WebhookEvent is a classified inbound Linear webhook event. Exactly one
// of Issue / Comment is set, matching Entity.
type WebhookEvent struct {
	Entity EntityType
	Action ActionType
	URL    string // event URL; also carries the human-readable identifier

	Issue   *IssueData
	Comment *CommentData

	// StatusChanged is set for Issue/update events whose updatedFrom
	// record carried a stateId marker.
	StatusChanged bool
}

// TeamRef identifies the team an issue belongs to.
type TeamRef struct {
	Key  string
	Name string
}

// StateRef is the workflow state of an issue.
type StateRef struct {
	ID    string
	Name  string
	Color string // hex color string, e.g. "#5E6AD2"
}

// IssueData carries the fields of an Issue create/update event.
type IssueData struct {
	ID          string
	Title       string
	Description string
	CreatorID   string
	AssigneeID  string // empty when unassigned
	Team        TeamRef
	State       StateRef
}

// CommentData carries the fields of a Comment create event.
type CommentData struct {
	ID         string
	Body       string
	IssueID    string
	IssueTitle string
	UserID     string
}
