package task

import (
	"context"

	"taskmaster-ai/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.Task, error)
	Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, sc model.Scope, id string) error
	Toggle(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// Statistics
	Stats(ctx context.Context, sc model.Scope) (StatsOutput, error)
	Productivity(ctx context.Context, sc model.Scope) ([]ProductivityDay, error)

	// Analysis results
	SaveAISuggestions(ctx context.Context, sc model.Scope, id string, suggestions model.AISuggestions) error
}
