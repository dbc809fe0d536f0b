package webhook

import (
	"errors"
	"fmt"
)

// ErrUnsupportedEvent marks a syntactically valid payload that matches
// no supported (entity, action) schema. It is acknowledged as success so
// the source platform does not retry the delivery.
var ErrUnsupportedEvent = errors.New("unsupported event shape")

// PayloadError is a field-level validation failure inside a matched
// schema branch. It carries every issue found, not just the first.
type PayloadError struct {
	Issues []string
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("invalid payload: %v", e.Issues)
}
