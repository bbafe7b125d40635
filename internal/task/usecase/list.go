package usecase

import (
	"context"

	"taskmaster-ai/internal/model"
	"taskmaster-ai/internal/task"
	repo "taskmaster-ai/internal/task/repository"
)

// List returns the caller's tasks, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) ([]model.Task, error) {
	opt := repo.ListTasksOptions{
		UserID:   sc.UserID,
		Status:   uc.filter(input.Status),
		Priority: uc.filter(input.Priority),
		Category: uc.filter(input.Category),
	}
	if opt.Status != "" && !model.TaskStatus(opt.Status).IsValid() {
		return nil, task.ErrInvalidStatus
	}
	if opt.Priority != "" && !model.TaskPriority(opt.Priority).IsValid() {
		return nil, task.ErrInvalidPriority
	}
	for _, id := range input.IDs {
		if err := uc.validateID(id); err != nil {
			return nil, err
		}
	}
	opt.IDs = input.IDs

	tasks, err := uc.repo.ListTasks(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTasks: %v", err)
		return nil, err
	}
	return tasks, nil
}
