package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"taskmaster-ai/internal/model"
	"taskmaster-ai/internal/user"
	"taskmaster-ai/internal/user/repository"
	"taskmaster-ai/internal/user/usecase"
	"taskmaster-ai/pkg/encrypter"
	"taskmaster-ai/pkg/scope"
)

// mock dependencies

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// memRepo is an in-memory repository.Repository
type memRepo struct {
	users map[string]model.User
}

func newMemRepo() *memRepo {
	return &memRepo{users: map[string]model.User{}}
}

func (r *memRepo) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	for _, u := range r.users {
		if u.Email == opt.Email {
			return model.User{}, repository.ErrDuplicateEmail
		}
	}
	now := time.Now()
	u := model.User{
		ID:           uuid.NewString(),
		Name:         opt.Name,
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.users[u.ID] = u
	return u, nil
}

func (r *memRepo) GetOneUser(ctx context.Context, opt repository.GetOneUserOptions) (model.User, error) {
	for _, u := range r.users {
		if (opt.ID == "" || u.ID == opt.ID) && (opt.Email == "" || u.Email == opt.Email) {
			return u, nil
		}
	}
	return model.User{}, nil
}

func (r *memRepo) UpdateUser(ctx context.Context, opt repository.UpdateUserOptions) (model.User, error) {
	u, ok := r.users[opt.ID]
	if !ok {
		return model.User{}, nil
	}
	if opt.Name != "" {
		u.Name = opt.Name
	}
	if opt.PasswordHash != "" {
		u.PasswordHash = opt.PasswordHash
	}
	u.UpdatedAt = time.Now()
	r.users[u.ID] = u
	return u, nil
}

func newUseCase(t *testing.T) (user.UseCase, *memRepo, scope.Manager) {
	t.Helper()
	jwtManager, err := scope.New("test-secret", "", time.Hour)
	require.NoError(t, err)

	repo := newMemRepo()
	return usecase.New(repo, &mockLogger{}, jwtManager, encrypter.New(bcrypt.MinCost)), repo, jwtManager
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	uc, repo, _ := newUseCase(t)

	out, err := uc.Register(ctx, user.RegisterInput{Name: " Ana ", Email: " Ana@Example.COM ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "Ana", out.User.Name)
	assert.Equal(t, "ana@example.com", out.User.Email)
	assert.NotEmpty(t, out.Token)
	assert.NotEqual(t, "secret1", repo.users[out.User.ID].PasswordHash)

	_, err = uc.Register(ctx, user.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, user.ErrEmailExists)

	_, err = uc.Register(ctx, user.RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "123"})
	assert.ErrorIs(t, err, user.ErrInvalidPayload)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUseCase(t)

	_, err := uc.Register(ctx, user.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	out, err := uc.Login(ctx, user.LoginInput{Email: "ANA@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	_, err = uc.Login(ctx, user.LoginInput{Email: "ana@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)

	_, err = uc.Login(ctx, user.LoginInput{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestAuthenticateAndVerify(t *testing.T) {
	ctx := context.Background()
	uc, repo, jwtManager := newUseCase(t)

	out, err := uc.Register(ctx, user.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)

	sc, err := uc.Authenticate(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, sc.UserID)

	u, err := uc.VerifyToken(ctx, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, u.ID)

	_, err = uc.Authenticate(ctx, "garbage")
	assert.ErrorIs(t, err, user.ErrInvalidToken)

	_, err = uc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, user.ErrInvalidToken)

	orphan, err := jwtManager.CreateToken(scope.Payload{UserID: uuid.NewString()})
	require.NoError(t, err)
	_, err = uc.VerifyToken(ctx, orphan)
	assert.ErrorIs(t, err, user.ErrUserNotFound)

	delete(repo.users, out.User.ID)
	_, err = uc.Authenticate(ctx, out.Token)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUseCase(t)

	out, err := uc.Register(ctx, user.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	sc := model.Scope{UserID: out.User.ID}

	u, err := uc.UpdateProfile(ctx, sc, user.UpdateProfileInput{Name: "  Ana María "})
	require.NoError(t, err)
	assert.Equal(t, "Ana María", u.Name)

	_, err = uc.UpdateProfile(ctx, sc, user.UpdateProfileInput{Name: " A "})
	assert.ErrorIs(t, err, user.ErrInvalidPayload)

	_, err = uc.UpdateProfile(ctx, model.Scope{UserID: "missing"}, user.UpdateProfileInput{Name: "Bob"})
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestChangePassword(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newUseCase(t)

	out, err := uc.Register(ctx, user.RegisterInput{Name: "Ana", Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	sc := model.Scope{UserID: out.User.ID}

	err = uc.ChangePassword(ctx, sc, user.ChangePasswordInput{CurrentPassword: "nope", NewPassword: "secret2"})
	assert.ErrorIs(t, err, user.ErrWrongPassword)

	err = uc.ChangePassword(ctx, sc, user.ChangePasswordInput{CurrentPassword: "secret1", NewPassword: "123"})
	assert.ErrorIs(t, err, user.ErrInvalidPayload)

	require.NoError(t, uc.ChangePassword(ctx, sc, user.ChangePasswordInput{CurrentPassword: "secret1", NewPassword: "secret2"}))

	_, err = uc.Login(ctx, user.LoginInput{Email: "ana@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
	_, err = uc.Login(ctx, user.LoginInput{Email: "ana@example.com", Password: "secret2"})
	assert.NoError(t, err)
}
