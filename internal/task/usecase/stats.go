package usecase

import (
	"context"
	"math"

	"taskmaster-ai/internal/model"
	"taskmaster-ai/internal/task"
	repo "taskmaster-ai/internal/task/repository"
)

// Stats summarises the caller's tasks by status and priority.
func (uc *implUseCase) Stats(ctx context.Context, sc model.Scope) (task.StatsOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Stats ListTasks: %v", err)
		return task.StatsOutput{}, err
	}
	return summarize(tasks), nil
}

func summarize(tasks []model.Task) task.StatsOutput {
	var out task.StatsOutput
	out.Total = len(tasks)

	for _, t := range tasks {
		switch t.Status {
		case model.TaskStatusCompleted:
			out.Completed++
		case model.TaskStatusInProgress:
			out.InProgress++
		default:
			out.Pending++
		}
		switch t.Priority {
		case model.TaskPriorityUrgent:
			out.Urgent++
		case model.TaskPriorityHigh:
			out.High++
		}
		out.TotalEstimatedTime += t.EstimatedTime
	}

	if out.Total > 0 {
		out.CompletionRate = int(math.Round(float64(out.Completed) / float64(out.Total) * 100))
		out.AverageTime = int(math.Round(float64(out.TotalEstimatedTime) / float64(out.Total)))
	}
	return out
}

// Productivity counts tasks created and completed on each of the last seven
// days, oldest first. Days are cut in the configured timezone.
func (uc *implUseCase) Productivity(ctx context.Context, sc model.Scope) ([]task.ProductivityDay, error) {
	tasks, err := uc.repo.ListTasks(ctx, repo.ListTasksOptions{UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Productivity ListTasks: %v", err)
		return nil, err
	}

	loc := uc.resolver.Location()
	today := uc.now().In(loc)

	days := make([]task.ProductivityDay, task.ProductivityDays)
	index := make(map[string]int, task.ProductivityDays)
	for i := range task.ProductivityDays {
		day := uc.resolver.StartOfDay(today.AddDate(0, 0, i-(task.ProductivityDays-1)))
		days[i] = task.ProductivityDay{Day: day}
		index[day.Format(dateLayout)] = i
	}

	for _, t := range tasks {
		if i, ok := index[t.CreatedAt.In(loc).Format(dateLayout)]; ok {
			days[i].Created++
		}
		if t.CompletedAt != nil {
			if i, ok := index[t.CompletedAt.In(loc).Format(dateLayout)]; ok {
				days[i].Completed++
			}
		}
	}
	return days, nil
}
