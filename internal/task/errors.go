package task

import "errors"

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrInvalidID            = errors.New("invalid task id")
	ErrInvalidTitle         = errors.New("title must be between 3 and 200 characters")
	ErrInvalidDescription   = errors.New("description cannot exceed 1000 characters")
	ErrInvalidPriority      = errors.New("invalid priority")
	ErrInvalidStatus        = errors.New("invalid status")
	ErrInvalidEstimatedTime = errors.New("estimated time must be between 0 and 10080 minutes")
	ErrInvalidCategory      = errors.New("category cannot exceed 50 characters")
	ErrInvalidDueDate       = errors.New("invalid due date")
	ErrDueDateInPast        = errors.New("due date cannot be in the past")
	ErrInvalidSubtask       = errors.New("subtask title is required")
)
