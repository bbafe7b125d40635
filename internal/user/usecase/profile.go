package usecase

import (
	"context"
	"errors"
	"strings"

	"taskmaster-ai/internal/model"
	"taskmaster-ai/internal/user"
	repo "taskmaster-ai/internal/user/repository"
	"taskmaster-ai/pkg/encrypter"
)

// Detail returns the user behind sc. Returns ErrUserNotFound when the account is gone.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope) (model.User, error) {
	u, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: sc.UserID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneUser: %v", err)
		return model.User{}, err
	}
	if u.ID == "" {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// UpdateProfile renames the user.
func (uc *implUseCase) UpdateProfile(ctx context.Context, sc model.Scope, input user.UpdateProfileInput) (model.User, error) {
	name := strings.TrimSpace(input.Name)
	if len([]rune(name)) < user.MinNameLength {
		return model.User{}, user.ErrInvalidPayload
	}

	u, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{ID: sc.UserID, Name: name})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateProfile UpdateUser: %v", err)
		return model.User{}, err
	}
	if u.ID == "" {
		return model.User{}, user.ErrUserNotFound
	}
	return u, nil
}

// ChangePassword replaces the password after checking the current one.
func (uc *implUseCase) ChangePassword(ctx context.Context, sc model.Scope, input user.ChangePasswordInput) error {
	if input.CurrentPassword == "" || len(input.NewPassword) < user.MinPasswordLength {
		return user.ErrInvalidPayload
	}

	u, err := uc.Detail(ctx, sc)
	if err != nil {
		return err
	}

	if err := uc.encrypter.ComparePassword(u.PasswordHash, input.CurrentPassword); err != nil {
		if !errors.Is(err, encrypter.ErrMismatchedPassword) {
			uc.l.Errorf(ctx, "uc.ChangePassword ComparePassword: %v", err)
		}
		return user.ErrWrongPassword
	}

	hash, err := uc.encrypter.HashPassword(input.NewPassword)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ChangePassword HashPassword: %v", err)
		return err
	}

	if _, err := uc.repo.UpdateUser(ctx, repo.UpdateUserOptions{ID: u.ID, PasswordHash: hash}); err != nil {
		uc.l.Errorf(ctx, "uc.ChangePassword UpdateUser: %v", err)
		return err
	}

	uc.l.Infof(ctx, "uc.ChangePassword: password changed for %s", u.Email)
	return nil
}
