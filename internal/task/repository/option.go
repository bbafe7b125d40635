package repository

import (
	"time"

	"taskmaster-ai/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID        string
	Title         string
	Description   string
	Priority      model.TaskPriority
	Status        model.TaskStatus
	DueDate       *time.Time
	EstimatedTime int
	Category      string
	Subtasks      []model.Subtask
	CompletedAt   *time.Time
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// All non-empty fields are applied as AND conditions.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter parameters for listing a user's Tasks.
type ListTasksOptions struct {
	UserID   string
	Status   string
	Priority string
	Category string
	IDs      []string
	OrderBy  string
}

// UpdateTaskOptions replaces every mutable column of a Task owned by UserID.
type UpdateTaskOptions struct {
	ID            string
	UserID        string
	Title         string
	Description   string
	Priority      model.TaskPriority
	Status        model.TaskStatus
	DueDate       *time.Time
	EstimatedTime int
	Category      string
	Subtasks      []model.Subtask
	CompletedAt   *time.Time
}

// UpdateAISuggestionsOptions stores an analysis result on a Task owned by UserID.
type UpdateAISuggestionsOptions struct {
	ID          string
	UserID      string
	Suggestions model.AISuggestions
}

type DeleteTaskOptions struct {
	ID     string
	UserID string
}
