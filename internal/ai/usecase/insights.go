package usecase

import (
	"context"
	"math"

	"taskmaster-ai/internal/ai"
	"taskmaster-ai/internal/model"
	"taskmaster-ai/internal/task"
)

// Insights summarises the caller's completion rate and average estimate.
func (uc *implUseCase) Insights(ctx context.Context, sc model.Scope) (ai.InsightsOutput, error) {
	tasks, err := uc.taskUC.List(ctx, sc, task.ListInput{})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Insights List: %v", err)
		return ai.InsightsOutput{}, err
	}
	return buildInsights(tasks), nil
}

func buildInsights(tasks []model.Task) ai.InsightsOutput {
	out := ai.InsightsOutput{
		TotalTasks:      len(tasks),
		AverageTaskTime: ai.DefaultAverageTime,
	}

	estimated, sum := 0, 0
	for _, t := range tasks {
		if t.Status == model.TaskStatusCompleted {
			out.CompletedTasks++
		}
		if t.EstimatedTime > 0 {
			estimated++
			sum += t.EstimatedTime
		}
	}

	if out.TotalTasks > 0 {
		out.CompletionRate = int(math.Round(float64(out.CompletedTasks) / float64(out.TotalTasks) * 100))
	}
	if estimated > 0 {
		out.AverageTaskTime = int(math.Round(float64(sum) / float64(estimated)))
	}
	out.Recommendation = recommend(out.TotalTasks, out.CompletionRate)
	return out
}

func recommend(total, rate int) string {
	switch {
	case total == 0:
		return ai.RecommendationStart
	case rate >= ai.ExcellentRate:
		return ai.RecommendationExcellent
	case rate >= ai.OnTrackRate:
		return ai.RecommendationOnTrack
	default:
		return ai.RecommendationPriority
	}
}

// Health reports which analysis path is active.
func (uc *implUseCase) Health(ctx context.Context) ai.HealthOutput {
	st := uc.analyzer.Status()
	out := ai.HealthOutput{
		Provider:   st.Provider,
		Model:      st.Model,
		Configured: st.Configured,
		Status:     ai.StatusFallback,
		Message:    ai.MsgProviderFallback,
	}
	if st.Configured {
		out.Status = ai.StatusOperational
		out.Message = ai.MsgProviderReady
	}
	return out
}
