package response

// Fixed envelope messages.
const (
	MessageSkipped      = "Event skipped"
	DefaultErrorMessage = "Something went wrong"
)
