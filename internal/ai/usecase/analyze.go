package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"taskmaster-ai/internal/ai"
	"taskmaster-ai/internal/analysis"
	"taskmaster-ai/internal/model"
	"taskmaster-ai/internal/task"
)

// AnalyzeTask runs the analysis for a title and description. When TaskID is
// set the result is stored on that task; a failed save is only logged.
func (uc *implUseCase) AnalyzeTask(ctx context.Context, sc model.Scope, input ai.AnalyzeTaskInput) (ai.AnalyzeTaskOutput, error) {
	title, err := analysisTitle(input.Title)
	if err != nil {
		return ai.AnalyzeTaskOutput{}, err
	}

	result := uc.analyzer.Analyze(ctx, analysis.AnalysisRequest{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
	})
	out := ai.AnalyzeTaskOutput{Analysis: result}

	if input.TaskID != "" {
		err := uc.taskUC.SaveAISuggestions(ctx, sc, input.TaskID, model.AISuggestions{
			Priority:      model.TaskPriority(result.Priority),
			EstimatedTime: result.EstimatedTimeMinutes,
			Tips:          result.Tips,
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.AnalyzeTask SaveAISuggestions %s: %v", input.TaskID, err)
		} else {
			out.Saved = true
		}
	}
	return out, nil
}

// SuggestPriority analyses the caller's tasks in TaskIDs and compares the
// suggested priority with the stored one. Unknown or foreign IDs are skipped.
func (uc *implUseCase) SuggestPriority(ctx context.Context, sc model.Scope, input ai.SuggestPriorityInput) ([]ai.PrioritySuggestion, error) {
	if len(input.TaskIDs) == 0 {
		return nil, ai.ErrNoTaskIDs
	}

	tasks, err := uc.taskUC.List(ctx, sc, task.ListInput{IDs: input.TaskIDs})
	if err != nil {
		if errors.Is(err, task.ErrInvalidID) {
			return nil, ai.ErrTaskNotFound
		}
		uc.l.Errorf(ctx, "uc.SuggestPriority List: %v", err)
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, ai.ErrTaskNotFound
	}

	requests := make([]analysis.AnalysisRequest, len(tasks))
	for i, t := range tasks {
		requests[i] = analysis.AnalysisRequest{Title: t.Title, Description: t.Description}
	}
	results := uc.analyzeAll(ctx, requests)

	suggestions := make([]ai.PrioritySuggestion, len(tasks))
	for i, t := range tasks {
		suggestions[i] = ai.PrioritySuggestion{
			TaskID:            t.ID,
			Title:             t.Title,
			CurrentPriority:   t.Priority,
			SuggestedPriority: results[i].Priority,
			EstimatedTime:     results[i].EstimatedTimeMinutes,
			Tips:              results[i].Tips,
		}
	}
	return suggestions, nil
}

// BatchAnalyze analyses up to MaxBatchSize items concurrently. Results keep
// the input order.
func (uc *implUseCase) BatchAnalyze(ctx context.Context, input ai.BatchAnalyzeInput) ([]ai.BatchResult, error) {
	switch {
	case len(input.Tasks) == 0:
		return nil, ai.ErrEmptyBatch
	case len(input.Tasks) > ai.MaxBatchSize:
		return nil, ai.ErrBatchTooLarge
	}

	requests := make([]analysis.AnalysisRequest, len(input.Tasks))
	for i, item := range input.Tasks {
		title, err := analysisTitle(item.Title)
		if err != nil {
			return nil, fmt.Errorf("tasks[%d]: %w", i, err)
		}
		requests[i] = analysis.AnalysisRequest{Title: title, Description: strings.TrimSpace(item.Description)}
	}

	results := uc.analyzeAll(ctx, requests)

	out := make([]ai.BatchResult, len(requests))
	for i, req := range requests {
		out[i] = ai.BatchResult{Title: req.Title, Analysis: results[i]}
	}
	return out, nil
}

// analyzeAll runs one goroutine per request and writes each result to its own slot.
func (uc *implUseCase) analyzeAll(ctx context.Context, requests []analysis.AnalysisRequest) []analysis.TaskAnalysis {
	results := make([]analysis.TaskAnalysis, len(requests))

	var g errgroup.Group
	for i, req := range requests {
		g.Go(func() error {
			results[i] = uc.analyzer.Analyze(ctx, req)
			return nil
		})
	}
	_ = g.Wait() // Analyze never fails
	return results
}

// analysisTitle trims title and requires MinTitleLength runes.
func analysisTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if utf8.RuneCountInString(title) < ai.MinTitleLength {
		return "", ai.ErrInvalidTitle
	}
	return title, nil
}
