package task

import "time"

// --- UseCase Inputs ---

type SubtaskInput struct {
	ID        string
	Title     string
	Completed bool
}

type CreateInput struct {
	Title         string
	Description   string
	Priority      string
	Status        string
	DueDate       string
	EstimatedTime int
	Category      string
	Subtasks      []SubtaskInput
}

// ListInput filters the caller's tasks. Empty or "all" disables a filter.
type ListInput struct {
	Status   string
	Priority string
	Category string
	IDs      []string
}

// UpdateInput carries a partial update; nil fields keep their stored value.
// An empty DueDate clears the due date.
type UpdateInput struct {
	ID            string
	Title         *string
	Description   *string
	Priority      *string
	Status        *string
	DueDate       *string
	EstimatedTime *int
	Category      *string
	Subtasks      *[]SubtaskInput
}

// --- UseCase Outputs ---

type StatsOutput struct {
	Total              int
	Completed          int
	Pending            int
	InProgress         int
	Urgent             int
	High               int
	TotalEstimatedTime int
	CompletionRate     int
	AverageTime        int
}

// ProductivityDay is one calendar day; Day is midnight in the configured timezone.
type ProductivityDay struct {
	Day       time.Time
	Created   int
	Completed int
}
