package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskmaster-ai/internal/model"
	repo "taskmaster-ai/internal/user/repository"
)

const userColumns = `id, name, email, password_hash, created_at, updated_at`

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (model.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query, opt.Name, opt.Email, opt.PasswordHash))
	if err != nil {
		err = insertError(err)
		if !errors.Is(err, repo.ErrDuplicateEmail) {
			r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		}
		return model.User{}, err
	}
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
// Returns zero-value User (ID == "") when not found.
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (model.User, error) {
	conds, args := buildGetOneQuery(opt)
	if conds == "" {
		return model.User{}, nil
	}

	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, conds)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return model.User{}, repo.ErrFailedToGet
	}
	return u, nil
}

// UpdateUser updates a User by ID and returns the updated entity.
func (r *implRepository) UpdateUser(ctx context.Context, opt repo.UpdateUserOptions) (model.User, error) {
	query := `
		UPDATE users
		SET name = COALESCE(NULLIF($1, ''), name),
		    password_hash = COALESCE(NULLIF($2, ''), password_hash),
		    updated_at = NOW()
		WHERE id = $3
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query, opt.Name, opt.PasswordHash, opt.ID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateUser"), err)
		return model.User{}, repo.ErrFailedToUpdate
	}
	return u, nil
}
