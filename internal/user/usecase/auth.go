package usecase

import (
	"context"
	"errors"
	"strings"

	"taskmaster-ai/internal/model"
	"taskmaster-ai/internal/user"
	repo "taskmaster-ai/internal/user/repository"
	"taskmaster-ai/pkg/encrypter"
	"taskmaster-ai/pkg/scope"
)

// Register creates an account and returns it with a fresh token.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" || len(input.Password) < user.MinPasswordLength {
		return user.AuthOutput{}, user.ErrInvalidPayload
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if existing.ID != "" {
		return user.AuthOutput{}, user.ErrEmailExists
	}

	hash, err := uc.encrypter.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register HashPassword: %v", err)
		return user.AuthOutput{}, err
	}

	u, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return user.AuthOutput{}, user.ErrEmailExists
		}
		uc.l.Errorf(ctx, "uc.Register CreateUser: %v", err)
		return user.AuthOutput{}, err
	}

	token, err := uc.issueToken(u)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Register issueToken: %v", err)
		return user.AuthOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Register: new user registered: %s", u.Email)
	return user.AuthOutput{User: u, Token: token}, nil
}

// Login checks the credentials. Unknown email and wrong password are indistinguishable.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return user.AuthOutput{}, user.ErrInvalidPayload
	}

	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login GetOneUser: %v", err)
		return user.AuthOutput{}, err
	}
	if u.ID == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	if err := uc.encrypter.ComparePassword(u.PasswordHash, input.Password); err != nil {
		if !errors.Is(err, encrypter.ErrMismatchedPassword) {
			uc.l.Errorf(ctx, "uc.Login ComparePassword: %v", err)
		}
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.issueToken(u)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Login issueToken: %v", err)
		return user.AuthOutput{}, err
	}

	uc.l.Infof(ctx, "uc.Login: login succeeded: %s", u.Email)
	return user.AuthOutput{User: u, Token: token}, nil
}

// VerifyToken returns the user a token belongs to.
func (uc *implUseCase) VerifyToken(ctx context.Context, token string) (model.User, error) {
	payload, err := uc.verify(token)
	if err != nil {
		return model.User{}, err
	}
	return uc.Detail(ctx, scope.NewScope(payload))
}

// Authenticate resolves a bearer token to a scope, checking the user still exists.
func (uc *implUseCase) Authenticate(ctx context.Context, token string) (model.Scope, error) {
	payload, err := uc.verify(token)
	if err != nil {
		return model.Scope{}, err
	}

	u, err := uc.Detail(ctx, scope.NewScope(payload))
	if err != nil {
		return model.Scope{}, err
	}
	return model.Scope{UserID: u.ID, Email: u.Email}, nil
}

func (uc *implUseCase) verify(token string) (scope.Payload, error) {
	if strings.TrimSpace(token) == "" {
		return scope.Payload{}, user.ErrInvalidToken
	}
	payload, err := uc.jwtManager.Verify(token)
	switch {
	case errors.Is(err, scope.ErrTokenExpired):
		return scope.Payload{}, user.ErrTokenExpired
	case err != nil:
		return scope.Payload{}, user.ErrInvalidToken
	}
	return payload, nil
}

func (uc *implUseCase) issueToken(u model.User) (string, error) {
	return uc.jwtManager.CreateToken(scope.Payload{UserID: u.ID, Email: u.Email})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
