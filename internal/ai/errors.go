package ai

import "errors"

var (
	ErrInvalidTitle   = errors.New("title must be at least 3 characters")
	ErrEmptyBatch     = errors.New("at least one task is required")
	ErrBatchTooLarge  = errors.New("at most 10 tasks can be analyzed at once")
	ErrNoTaskIDs      = errors.New("at least one task id is required")
	ErrTaskNotFound   = errors.New("task not found")
	ErrInvalidPayload = errors.New("invalid payload")
)
