package postgre

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	repo "taskmaster-ai/internal/user/repository"
	"taskmaster-ai/pkg/log"
)

// stubDriver answers every query according to the DSN it was opened with:
// "duplicate" fails with a unique violation, "broken" with a generic error,
// "empty" returns no rows and "one" returns a single user.
type stubDriver struct{}

func (stubDriver) Open(dsn string) (driver.Conn, error) { return stubConn{mode: dsn}, nil }

type stubConn struct{ mode string }

func (c stubConn) Prepare(string) (driver.Stmt, error) { return stubStmt(c), nil }
func (stubConn) Close() error                          { return nil }
func (stubConn) Begin() (driver.Tx, error)             { return nil, errors.New("not supported") }

type stubStmt struct{ mode string }

func (stubStmt) Close() error                               { return nil }
func (stubStmt) NumInput() int                              { return -1 }
func (stubStmt) Exec([]driver.Value) (driver.Result, error) { return nil, errors.New("not supported") }

func (s stubStmt) Query([]driver.Value) (driver.Rows, error) {
	switch s.mode {
	case "duplicate":
		return nil, &pq.Error{Code: uniqueViolationErr, Message: `duplicate key value violates unique constraint "users_email_key"`}
	case "broken":
		return nil, errors.New("connection reset by peer")
	case "one":
		return &stubRows{row: []driver.Value{"u1", "Ana", "ana@example.com", "hash", stubNow, stubNow}}, nil
	default:
		return &stubRows{}, nil
	}
}

var stubNow = time.Date(2026, 5, 13, 9, 30, 0, 0, time.UTC)

type stubRows struct {
	row  []driver.Value
	done bool
}

func (*stubRows) Columns() []string {
	return []string{"id", "name", "email", "password_hash", "created_at", "updated_at"}
}
func (*stubRows) Close() error { return nil }

func (r *stubRows) Next(dest []driver.Value) error {
	if r.row == nil || r.done {
		return io.EOF
	}
	copy(dest, r.row)
	r.done = true
	return nil
}

func init() {
	sql.Register("userstub", stubDriver{})
}

func newStubRepo(t *testing.T, mode string) repo.Repository {
	t.Helper()
	db, err := sql.Open("userstub", mode)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop())
}

func TestBuildGetOneQuery(t *testing.T) {
	tests := map[string]struct {
		opt       repo.GetOneUserOptions
		wantConds string
		wantArgs  []any
	}{
		"id only":    {opt: repo.GetOneUserOptions{ID: "u1"}, wantConds: "id = $1", wantArgs: []any{"u1"}},
		"email only": {opt: repo.GetOneUserOptions{Email: "ana@example.com"}, wantConds: "email = $1", wantArgs: []any{"ana@example.com"}},
		"both": {
			opt:       repo.GetOneUserOptions{ID: "u1", Email: "ana@example.com"},
			wantConds: "id = $1 AND email = $2",
			wantArgs:  []any{"u1", "ana@example.com"},
		},
		"none": {opt: repo.GetOneUserOptions{}, wantConds: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			conds, args := buildGetOneQuery(tc.opt)
			assert.Equal(t, tc.wantConds, conds)
			assert.Equal(t, tc.wantArgs, args)
		})
	}
}

func TestInsertError(t *testing.T) {
	assert.ErrorIs(t, insertError(&pq.Error{Code: uniqueViolationErr}), repo.ErrDuplicateEmail)

	err := insertError(&pq.Error{Code: "23502"})
	assert.ErrorIs(t, err, repo.ErrFailedToInsert)
	assert.NotErrorIs(t, err, repo.ErrDuplicateEmail)

	assert.ErrorIs(t, insertError(errors.New("boom")), repo.ErrFailedToInsert)
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	opt := repo.CreateUserOptions{Name: "Ana", Email: "ana@example.com", PasswordHash: "hash"}

	t.Run("created", func(t *testing.T) {
		u, err := newStubRepo(t, "one").CreateUser(ctx, opt)
		require.NoError(t, err)
		assert.Equal(t, "u1", u.ID)
		assert.Equal(t, "ana@example.com", u.Email)
		assert.True(t, stubNow.Equal(u.CreatedAt))
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := newStubRepo(t, "duplicate").CreateUser(ctx, opt)
		assert.ErrorIs(t, err, repo.ErrDuplicateEmail)
	})

	t.Run("other failure", func(t *testing.T) {
		_, err := newStubRepo(t, "broken").CreateUser(ctx, opt)
		assert.ErrorIs(t, err, repo.ErrFailedToInsert)
	})
}

func TestGetOneUser(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		u, err := newStubRepo(t, "one").GetOneUser(ctx, repo.GetOneUserOptions{Email: "ana@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "Ana", u.Name)
	})

	t.Run("not found is a zero user", func(t *testing.T) {
		u, err := newStubRepo(t, "empty").GetOneUser(ctx, repo.GetOneUserOptions{ID: "u2"})
		require.NoError(t, err)
		assert.Empty(t, u.ID)
	})

	t.Run("no filter skips the query", func(t *testing.T) {
		u, err := newStubRepo(t, "broken").GetOneUser(ctx, repo.GetOneUserOptions{})
		require.NoError(t, err)
		assert.Empty(t, u.ID)
	})

	t.Run("query failure", func(t *testing.T) {
		_, err := newStubRepo(t, "broken").GetOneUser(ctx, repo.GetOneUserOptions{ID: "u1"})
		assert.ErrorIs(t, err, repo.ErrFailedToGet)
	})
}
