package validation

import (
	"errors"
	"fmt"
)

const msgMalformedJSON = "malformed JSON"

var errTrailingData = errors.New("unexpected data after JSON value")

// Error is a single schema violation.
type Error struct {
	// Location is one of LocationBody, LocationQuery, LocationParams.
	Location string
	// Field is the dotted path of the offending value; empty for the root.
	Field string
	// Message is the human readable reason reported by the schema engine.
	Message string
}

// Error renders "field: message", or just the message for root-level
// violations such as missing required properties.
func (e *Error) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
