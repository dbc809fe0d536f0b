package linear

// User is a Linear user record as returned by the GraphQL API.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	AvatarURL string `json:"avatarUrl"`
}

// UserRef is a bare user reference nested inside other objects.
type UserRef struct {
	ID string `json:"id"`
}

// Issue is a Linear issue record as returned by the GraphQL API.
type Issue struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Assignee *UserRef `json:"assignee"`
}

// graphQLRequest is the body for POST /graphql.
type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphQLError is a single error entry in a GraphQL response.
type graphQLError struct {
	Message string `json:"message"`
}
