package usecase

import (
	"context"
	"time"

	"taskmaster-ai/internal/model"
	"taskmaster-ai/internal/task"
	repo "taskmaster-ai/internal/task/repository"
)

// Detail retrieves a single Task owned by the caller. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	if err := uc.validateID(id); err != nil {
		return model.Task{}, task.ErrTaskNotFound
	}
	t, err := uc.repo.GetOneTask(ctx, repo.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Update applies a partial update to a Task owned by the caller.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	existing, err := uc.Detail(ctx, sc, input.ID)
	if err != nil {
		return model.Task{}, err
	}

	now := uc.now()
	opt, err := uc.mergeUpdate(existing, input, now)
	if err != nil {
		return model.Task{}, err
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// Delete removes a Task owned by the caller. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	if err := uc.validateID(id); err != nil {
		return task.ErrTaskNotFound
	}
	deleted, err := uc.repo.DeleteTask(ctx, repo.DeleteTaskOptions{ID: id, UserID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteTask: %v", err)
		return err
	}
	if !deleted {
		return task.ErrTaskNotFound
	}
	return nil
}

// Toggle flips a Task between completed and pending.
func (uc *implUseCase) Toggle(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	existing, err := uc.Detail(ctx, sc, id)
	if err != nil {
		return model.Task{}, err
	}

	status := model.TaskStatusCompleted
	if existing.Status == model.TaskStatusCompleted {
		status = model.TaskStatusPending
	}

	opt := uc.toUpdateOptions(existing)
	opt.Status = status
	opt.CompletedAt = uc.completedAt(status, nil, uc.now())

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Toggle UpdateTask: %v", err)
		return model.Task{}, err
	}
	if t.ID == "" {
		return model.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// SaveAISuggestions stores an analysis result on a Task owned by the caller.
func (uc *implUseCase) SaveAISuggestions(ctx context.Context, sc model.Scope, id string, suggestions model.AISuggestions) error {
	if _, err := uc.Detail(ctx, sc, id); err != nil {
		return err
	}
	if suggestions.GeneratedAt.IsZero() {
		suggestions.GeneratedAt = uc.now()
	}
	if err := uc.repo.UpdateAISuggestions(ctx, repo.UpdateAISuggestionsOptions{
		ID:          id,
		UserID:      sc.UserID,
		Suggestions: suggestions,
	}); err != nil {
		uc.l.Errorf(ctx, "uc.SaveAISuggestions UpdateAISuggestions: %v", err)
		return err
	}
	return nil
}

func (uc *implUseCase) toUpdateOptions(t model.Task) repo.UpdateTaskOptions {
	return repo.UpdateTaskOptions{
		ID:            t.ID,
		UserID:        t.UserID,
		Title:         t.Title,
		Description:   t.Description,
		Priority:      t.Priority,
		Status:        t.Status,
		DueDate:       t.DueDate,
		EstimatedTime: t.EstimatedTime,
		Category:      t.Category,
		Subtasks:      t.Subtasks,
		CompletedAt:   t.CompletedAt,
	}
}

// mergeUpdate validates the provided fields and overlays them on the stored task.
func (uc *implUseCase) mergeUpdate(existing model.Task, input task.UpdateInput, now time.Time) (repo.UpdateTaskOptions, error) {
	opt := uc.toUpdateOptions(existing)
	var err error

	if input.Title != nil {
		if opt.Title, err = uc.validateTitle(*input.Title); err != nil {
			return opt, err
		}
	}
	if input.Description != nil {
		if opt.Description, err = uc.validateDescription(*input.Description); err != nil {
			return opt, err
		}
	}
	if input.Priority != nil {
		if *input.Priority == "" {
			return opt, task.ErrInvalidPriority
		}
		if opt.Priority, err = uc.validatePriority(*input.Priority); err != nil {
			return opt, err
		}
	}
	if input.Status != nil {
		if *input.Status == "" {
			return opt, task.ErrInvalidStatus
		}
		if opt.Status, err = uc.validateStatus(*input.Status); err != nil {
			return opt, err
		}
	}
	if input.EstimatedTime != nil {
		if err := uc.validateEstimatedTime(*input.EstimatedTime); err != nil {
			return opt, err
		}
		opt.EstimatedTime = *input.EstimatedTime
	}
	if input.Category != nil {
		if opt.Category, err = uc.validateCategory(*input.Category); err != nil {
			return opt, err
		}
	}
	if input.DueDate != nil {
		if opt.DueDate, err = uc.resolveDueDate(*input.DueDate, now); err != nil {
			return opt, err
		}
	}
	if input.Subtasks != nil {
		if opt.Subtasks, err = uc.buildSubtasks(*input.Subtasks, existing.Subtasks, now); err != nil {
			return opt, err
		}
	}

	opt.CompletedAt = uc.completedAt(opt.Status, existing.CompletedAt, now)
	return opt, nil
}
