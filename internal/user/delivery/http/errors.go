package http

import (
	"errors"
	"net/http"

	"taskmaster-ai/internal/user"
	pkgErrors "taskmaster-ai/pkg/errors"
)

var (
	errScopeMissing = pkgErrors.NewHTTPError(http.StatusUnauthorized, "token not provided")
	errTokenMissing = pkgErrors.NewHTTPError(http.StatusBadRequest, "token not provided")
)

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid payload")
	case errors.Is(err, user.ErrEmailExists):
		return pkgErrors.NewHTTPError(http.StatusConflict, "email already registered")
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, user.ErrWrongPassword):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "current password is incorrect")
	case errors.Is(err, user.ErrInvalidToken):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid token")
	case errors.Is(err, user.ErrTokenExpired):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "token expired")
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "user not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
