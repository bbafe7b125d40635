package usecase

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"taskmaster-ai/internal/model"
	"taskmaster-ai/internal/task"
	"taskmaster-ai/pkg/duedate"
)

func (uc *implUseCase) validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	n := utf8.RuneCountInString(title)
	if n < task.MinTitleLength || n > task.MaxTitleLength {
		return "", task.ErrInvalidTitle
	}
	return title, nil
}

func (uc *implUseCase) validateDescription(desc string) (string, error) {
	desc = strings.TrimSpace(desc)
	if utf8.RuneCountInString(desc) > task.MaxDescriptionLength {
		return "", task.ErrInvalidDescription
	}
	return desc, nil
}

func (uc *implUseCase) validatePriority(p string) (model.TaskPriority, error) {
	if p == "" {
		return model.TaskPriorityMedium, nil
	}
	priority := model.TaskPriority(strings.ToLower(strings.TrimSpace(p)))
	if !priority.IsValid() {
		return "", task.ErrInvalidPriority
	}
	return priority, nil
}

func (uc *implUseCase) validateStatus(s string) (model.TaskStatus, error) {
	if s == "" {
		return model.TaskStatusPending, nil
	}
	status := model.TaskStatus(strings.ToLower(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", task.ErrInvalidStatus
	}
	return status, nil
}

func (uc *implUseCase) validateEstimatedTime(minutes int) error {
	if minutes < 0 || minutes > task.MaxEstimatedTime {
		return task.ErrInvalidEstimatedTime
	}
	return nil
}

func (uc *implUseCase) validateCategory(category string) (string, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return task.DefaultCategory, nil
	}
	if utf8.RuneCountInString(category) > task.MaxCategoryLength {
		return "", task.ErrInvalidCategory
	}
	return category, nil
}

// resolveDueDate returns nil for an empty input. Resolved dates before now are rejected.
func (uc *implUseCase) resolveDueDate(input string, now time.Time) (*time.Time, error) {
	if strings.TrimSpace(input) == "" {
		return nil, nil
	}
	due, err := uc.resolver.Resolve(input, now)
	if err != nil {
		if errors.Is(err, duedate.ErrUnrecognized) {
			return nil, task.ErrInvalidDueDate
		}
		return nil, err
	}
	if due.Before(now) {
		return nil, task.ErrDueDateInPast
	}
	return &due, nil
}

// buildSubtasks keeps the ID and creation time of subtasks that already exist
// and assigns fresh ones to new entries.
func (uc *implUseCase) buildSubtasks(inputs []task.SubtaskInput, existing []model.Subtask, now time.Time) ([]model.Subtask, error) {
	known := make(map[string]model.Subtask, len(existing))
	for _, st := range existing {
		known[st.ID] = st
	}

	subtasks := make([]model.Subtask, 0, len(inputs))
	for _, in := range inputs {
		title := strings.TrimSpace(in.Title)
		if title == "" || utf8.RuneCountInString(title) > task.MaxSubtaskTitle {
			return nil, task.ErrInvalidSubtask
		}

		st := model.Subtask{
			ID:        uuid.NewString(),
			Title:     title,
			Completed: in.Completed,
			CreatedAt: now,
		}
		if prev, ok := known[in.ID]; ok {
			st.ID = prev.ID
			st.CreatedAt = prev.CreatedAt
		}
		subtasks = append(subtasks, st)
	}
	return subtasks, nil
}

// completedAt sets the completion time when a task enters the completed
// status and clears it when the task leaves it.
func (uc *implUseCase) completedAt(status model.TaskStatus, prev *time.Time, now time.Time) *time.Time {
	if status != model.TaskStatusCompleted {
		return nil
	}
	if prev != nil {
		return prev
	}
	return &now
}

// filter maps "all" and blank query values to no filter.
func (uc *implUseCase) filter(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, task.FilterAll) {
		return ""
	}
	return v
}

func (uc *implUseCase) validateID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return task.ErrInvalidID
	}
	return nil
}
