package ai

import (
	"context"

	"taskmaster-ai/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	AnalyzeTask(ctx context.Context, sc model.Scope, input AnalyzeTaskInput) (AnalyzeTaskOutput, error)
	Insights(ctx context.Context, sc model.Scope) (InsightsOutput, error)
	SuggestPriority(ctx context.Context, sc model.Scope, input SuggestPriorityInput) ([]PrioritySuggestion, error)
	BatchAnalyze(ctx context.Context, input BatchAnalyzeInput) ([]BatchResult, error)
	Health(ctx context.Context) HealthOutput
}
