package errors_test

import (
	"fmt"
	"net/http"
	"testing"

	pkgErrors "taskmaster-ai/pkg/errors"
)

func TestAsHTTPError(t *testing.T) {
	base := pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	wrapped := fmt.Errorf("handler: %w", base)

	got, ok := pkgErrors.AsHTTPError(wrapped)
	if !ok {
		t.Fatal("expected wrapped HTTPError to be found")
	}
	if got.Code != http.StatusNotFound || got.Error() != "task not found" {
		t.Errorf("unexpected error: %+v", got)
	}

	if _, ok := pkgErrors.AsHTTPError(fmt.Errorf("plain")); ok {
		t.Error("plain error must not be reported as HTTPError")
	}
}
