package usecase

import (
	"context"

	"taskmaster-ai/internal/model"
	"taskmaster-ai/internal/task"
	repo "taskmaster-ai/internal/task/repository"
)

// Create validates the input and stores a new Task for the caller.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	now := uc.now()

	title, err := uc.validateTitle(input.Title)
	if err != nil {
		return model.Task{}, err
	}
	description, err := uc.validateDescription(input.Description)
	if err != nil {
		return model.Task{}, err
	}
	priority, err := uc.validatePriority(input.Priority)
	if err != nil {
		return model.Task{}, err
	}
	status, err := uc.validateStatus(input.Status)
	if err != nil {
		return model.Task{}, err
	}
	if err := uc.validateEstimatedTime(input.EstimatedTime); err != nil {
		return model.Task{}, err
	}
	category, err := uc.validateCategory(input.Category)
	if err != nil {
		return model.Task{}, err
	}
	dueDate, err := uc.resolveDueDate(input.DueDate, now)
	if err != nil {
		return model.Task{}, err
	}
	subtasks, err := uc.buildSubtasks(input.Subtasks, nil, now)
	if err != nil {
		return model.Task{}, err
	}

	t, err := uc.repo.CreateTask(ctx, repo.CreateTaskOptions{
		UserID:        sc.UserID,
		Title:         title,
		Description:   description,
		Priority:      priority,
		Status:        status,
		DueDate:       dueDate,
		EstimatedTime: input.EstimatedTime,
		Category:      category,
		Subtasks:      subtasks,
		CompletedAt:   uc.completedAt(status, nil, now),
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTask: %v", err)
		return model.Task{}, err
	}
	return t, nil
}
