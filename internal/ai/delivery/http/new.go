package http

import (
	"taskmaster-ai/internal/ai"
	"taskmaster-ai/pkg/log"
)

type handler struct {
	l  log.Logger
	uc ai.UseCase
}

// New creates a new HTTP handler for the ai domain.
func New(l log.Logger, uc ai.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
