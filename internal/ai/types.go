package ai

import (
	"taskmaster-ai/internal/analysis"
	"taskmaster-ai/internal/model"
)

// --- UseCase Inputs ---

type AnalyzeTaskInput struct {
	Title       string
	Description string
	TaskID      string
}

type SuggestPriorityInput struct {
	TaskIDs []string
}

type BatchItem struct {
	Title       string
	Description string
}

type BatchAnalyzeInput struct {
	Tasks []BatchItem
}

// --- UseCase Outputs ---

type AnalyzeTaskOutput struct {
	Analysis analysis.TaskAnalysis
	// Saved reports whether the analysis was stored on TaskID.
	Saved bool
}

type InsightsOutput struct {
	CompletionRate  int
	TotalTasks      int
	CompletedTasks  int
	AverageTaskTime int
	Recommendation  string
}

type PrioritySuggestion struct {
	TaskID            string
	Title             string
	CurrentPriority   model.TaskPriority
	SuggestedPriority analysis.Priority
	EstimatedTime     int
	Tips              []string
}

type BatchResult struct {
	Title    string
	Analysis analysis.TaskAnalysis
}

type HealthOutput struct {
	Provider   string
	Model      string
	Configured bool
	Status     string
	Message    string
}
