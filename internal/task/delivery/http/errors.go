package http

import (
	"errors"
	"net/http"

	"taskmaster-ai/internal/task"
	pkgErrors "taskmaster-ai/pkg/errors"
)

var errScopeMissing = pkgErrors.NewHTTPError(http.StatusUnauthorized, "token not provided")

var badRequestErrors = []error{
	task.ErrInvalidTitle,
	task.ErrInvalidDescription,
	task.ErrInvalidPriority,
	task.ErrInvalidStatus,
	task.ErrInvalidEstimatedTime,
	task.ErrInvalidCategory,
	task.ErrInvalidDueDate,
	task.ErrDueDateInPast,
	task.ErrInvalidSubtask,
	task.ErrInvalidID,
}

// mapError translates domain/use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	if errors.Is(err, task.ErrTaskNotFound) {
		return pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return pkgErrors.NewHTTPError(http.StatusBadRequest, target.Error())
		}
	}
	return pkgErrors.ErrInternalServerError
}
