package postgre

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"taskmaster-ai/internal/model"
	repo "taskmaster-ai/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, priority, status, due_date, estimated_time,
	category, subtasks, ai_priority, ai_estimated_time, ai_tips, ai_generated_at,
	created_at, updated_at, completed_at`

// CreateTask inserts a new Task row and returns the created entity.
func (r *implRepository) CreateTask(ctx context.Context, opt repo.CreateTaskOptions) (model.Task, error) {
	subtasks, err := encodeSubtasks(opt.Subtasks)
	if err != nil {
		r.l.Errorf(ctx, "%s encodeSubtasks: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	query := `
		INSERT INTO tasks (id, user_id, title, description, priority, status, due_date,
			estimated_time, category, subtasks, created_at, updated_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW(), $11)
		RETURNING ` + taskColumns

	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.UserID, opt.Title, opt.Description, string(opt.Priority), string(opt.Status),
		nullTime(opt.DueDate), opt.EstimatedTime, opt.Category, subtasks, nullTime(opt.CompletedAt),
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTask retrieves a single Task by the provided filters (AND condition).
// Returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, opt repo.GetOneTaskOptions) (model.Task, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks WHERE %s LIMIT 1", taskColumns, mods)

	t, err := scanTask(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTasks returns the Tasks matching the filters, newest first by default.
func (r *implRepository) ListTasks(ctx context.Context, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM tasks %s", taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask overwrites the mutable columns of a Task and returns the updated entity.
// Returns zero-value Task when no row matches ID and UserID.
func (r *implRepository) UpdateTask(ctx context.Context, opt repo.UpdateTaskOptions) (model.Task, error) {
	subtasks, err := encodeSubtasks(opt.Subtasks)
	if err != nil {
		r.l.Errorf(ctx, "%s encodeSubtasks: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	query := `
		UPDATE tasks
		SET title = $1, description = $2, priority = $3, status = $4, due_date = $5,
		    estimated_time = $6, category = $7, subtasks = $8, completed_at = $9, updated_at = NOW()
		WHERE id = $10 AND user_id = $11
		RETURNING ` + taskColumns

	t, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Description, string(opt.Priority), string(opt.Status), nullTime(opt.DueDate),
		opt.EstimatedTime, opt.Category, subtasks, nullTime(opt.CompletedAt), opt.ID, opt.UserID,
	))
	if err == sql.ErrNoRows {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// UpdateAISuggestions stores the latest analysis on a Task.
func (r *implRepository) UpdateAISuggestions(ctx context.Context, opt repo.UpdateAISuggestionsOptions) error {
	const query = `
		UPDATE tasks
		SET ai_priority = $1, ai_estimated_time = $2, ai_tips = $3, ai_generated_at = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6`

	s := opt.Suggestions
	_, err := r.db.ExecContext(ctx, query,
		string(s.Priority), s.EstimatedTime, pq.Array(s.Tips), s.GeneratedAt, opt.ID, opt.UserID,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateAISuggestions"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteTask removes a Task and reports whether a row was deleted.
func (r *implRepository) DeleteTask(ctx context.Context, opt repo.DeleteTaskOptions) (bool, error) {
	const query = `DELETE FROM tasks WHERE id = $1 AND user_id = $2`
	res, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "%s RowsAffected: %v", r.dsn("DeleteTask"), err)
		return false, repo.ErrFailedToDelete
	}
	return n > 0, nil
}
