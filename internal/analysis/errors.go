package analysis

import "fmt"

// ParseError reports that no structured payload could be located in a
// provider response, or that it did not decode to a JSON object.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse provider response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("parse provider response: %s", e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
