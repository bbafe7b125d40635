package duedate

import "errors"

var (
	ErrEmpty        = errors.New("empty due date")
	ErrUnrecognized = errors.New("unrecognized due date")
)
