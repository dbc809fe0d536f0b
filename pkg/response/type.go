package response

// Resp is the standard JSON response body. Every outcome of the relay,
// success or failure, is wrapped in this envelope.
type Resp struct {
	Success bool `json:"success"`
	Message any  `json:"message"`
	Error   any  `json:"error"`
}
