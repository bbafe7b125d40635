package repository

import (
	"context"

	"taskmaster-ai/internal/model"
)

// Repository is the composed interface for the task data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines all data access methods for the Task entity.
type TaskRepository interface {
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	GetOneTask(ctx context.Context, opt GetOneTaskOptions) (model.Task, error)
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateTaskOptions) (model.Task, error)
	UpdateAISuggestions(ctx context.Context, opt UpdateAISuggestionsOptions) error
	DeleteTask(ctx context.Context, opt DeleteTaskOptions) (bool, error)
}
