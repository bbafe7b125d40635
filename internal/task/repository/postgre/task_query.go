package postgre

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"taskmaster-ai/internal/model"
	repo "taskmaster-ai/internal/task/repository"
)

// buildGetOneQuery builds WHERE clause + args for GetOneTask.
func (r *implRepository) buildGetOneQuery(opt repo.GetOneTaskOptions) (string, []any) {
	var conditions []string
	var args []any
	idx := 1

	if opt.ID != "" {
		conditions = append(conditions, fmt.Sprintf("id = $%d", idx))
		args = append(args, opt.ID)
		idx++
	}
	if opt.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", idx))
		args = append(args, opt.UserID)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildListQuery builds the WHERE + ORDER clause for ListTasks.
func (r *implRepository) buildListQuery(opt repo.ListTasksOptions) (string, []any) {
	var parts []string
	var conditions []string
	var args []any
	idx := 1

	add := func(column string, value any) {
		conditions = append(conditions, fmt.Sprintf("%s = $%d", column, idx))
		args = append(args, value)
		idx++
	}

	if opt.UserID != "" {
		add("user_id", opt.UserID)
	}
	if opt.Status != "" {
		add("status", opt.Status)
	}
	if opt.Priority != "" {
		add("priority", opt.Priority)
	}
	if opt.Category != "" {
		add("category", opt.Category)
	}
	if len(opt.IDs) > 0 {
		conditions = append(conditions, fmt.Sprintf("id::text = ANY($%d)", idx))
		args = append(args, pq.Array(opt.IDs))
		idx++
	}

	if len(conditions) > 0 {
		parts = append(parts, "WHERE "+strings.Join(conditions, " AND "))
	}

	orderBy := opt.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	parts = append(parts, "ORDER BY "+orderBy)

	return strings.Join(parts, " "), args
}

func scanTask(row interface{ Scan(...any) error }) (model.Task, error) {
	var (
		t             model.Task
		priority      string
		status        string
		dueDate       sql.NullTime
		subtasks      []byte
		aiPriority    sql.NullString
		aiEstimated   sql.NullInt64
		aiTips        pq.StringArray
		aiGeneratedAt sql.NullTime
		completedAt   sql.NullTime
	)

	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &priority, &status, &dueDate, &t.EstimatedTime,
		&t.Category, &subtasks, &aiPriority, &aiEstimated, &aiTips, &aiGeneratedAt,
		&t.CreatedAt, &t.UpdatedAt, &completedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	t.Priority = model.TaskPriority(priority)
	t.Status = model.TaskStatus(status)
	t.DueDate = timePtr(dueDate)
	t.CompletedAt = timePtr(completedAt)

	t.Subtasks = []model.Subtask{}
	if len(subtasks) > 0 {
		if err := json.Unmarshal(subtasks, &t.Subtasks); err != nil {
			return model.Task{}, fmt.Errorf("decode subtasks: %w", err)
		}
	}

	if aiGeneratedAt.Valid {
		t.AISuggestions = &model.AISuggestions{
			Priority:      model.TaskPriority(aiPriority.String),
			EstimatedTime: int(aiEstimated.Int64),
			Tips:          []string(aiTips),
			GeneratedAt:   aiGeneratedAt.Time,
		}
	}
	return t, nil
}

// encodeSubtasks renders subtasks as JSON text for the JSONB column.
func encodeSubtasks(subtasks []model.Subtask) (string, error) {
	if subtasks == nil {
		subtasks = []model.Subtask{}
	}
	b, err := json.Marshal(subtasks)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
