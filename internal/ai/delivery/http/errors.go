package http

import (
	"errors"
	"net/http"

	"taskmaster-ai/internal/ai"
	pkgErrors "taskmaster-ai/pkg/errors"
)

var errScopeMissing = pkgErrors.NewHTTPError(http.StatusUnauthorized, "token not provided")

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, ai.ErrInvalidTitle),
		errors.Is(err, ai.ErrEmptyBatch),
		errors.Is(err, ai.ErrBatchTooLarge),
		errors.Is(err, ai.ErrNoTaskIDs),
		errors.Is(err, ai.ErrInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ai.ErrTaskNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "no tasks found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
