package usecase

import (
	"taskmaster-ai/internal/ai"
	"taskmaster-ai/internal/analysis"
	"taskmaster-ai/internal/task"
	"taskmaster-ai/pkg/log"
)

// implUseCase is the private implementation of ai.UseCase.
type implUseCase struct {
	l        log.Logger
	analyzer analysis.Analyzer
	taskUC   task.UseCase
}

var _ ai.UseCase = (*implUseCase)(nil)

// New creates a new ai UseCase implementation.
func New(l log.Logger, analyzer analysis.Analyzer, taskUC task.UseCase) *implUseCase {
	return &implUseCase{
		l:        l,
		analyzer: analyzer,
		taskUC:   taskUC,
	}
}
