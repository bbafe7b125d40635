package model

import (
	"math"
	"time"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task is a to-do item owned by a single user.
type Task struct {
	ID            string
	UserID        string
	Title         string
	Description   string
	Priority      TaskPriority
	Status        TaskStatus
	DueDate       *time.Time
	EstimatedTime int
	Category      string
	Subtasks      []Subtask
	AISuggestions *AISuggestions
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CompletedAt   *time.Time
}

type Subtask struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// AISuggestions is the last analysis saved on a task.
type AISuggestions struct {
	Priority      TaskPriority
	EstimatedTime int
	Tips          []string
	GeneratedAt   time.Time
}

// SubtasksProgress is the rounded percentage of completed subtasks.
func (t Task) SubtasksProgress() int {
	if len(t.Subtasks) == 0 {
		return 0
	}
	done := 0
	for _, st := range t.Subtasks {
		if st.Completed {
			done++
		}
	}
	return int(math.Round(float64(done) / float64(len(t.Subtasks)) * 100))
}

// IsOverdue reports whether the due date has passed on an unfinished task.
func (t Task) IsOverdue(now time.Time) bool {
	if t.DueDate == nil || t.Status == TaskStatusCompleted {
		return false
	}
	return now.After(*t.DueDate)
}
