package postgre

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"taskmaster-ai/internal/model"
	repo "taskmaster-ai/internal/user/repository"
)

const uniqueViolationErr = "23505"

// buildGetOneQuery returns the WHERE conditions (AND-joined) and their args.
// An empty string means no filter was given.
func buildGetOneQuery(opt repo.GetOneUserOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != "" {
		args = append(args, opt.ID)
		conditions = append(conditions, fmt.Sprintf("id = $%d", len(args)))
	}
	if opt.Email != "" {
		args = append(args, opt.Email)
		conditions = append(conditions, fmt.Sprintf("email = $%d", len(args)))
	}
	return strings.Join(conditions, " AND "), args
}

// insertError maps a unique violation on users.email to ErrDuplicateEmail.
func insertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolationErr {
		return repo.ErrDuplicateEmail
	}
	return fmt.Errorf("%w: %v", repo.ErrFailedToInsert, err)
}

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}
