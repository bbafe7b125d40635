package usecase

import (
	"time"

	"taskmaster-ai/internal/task"
	"taskmaster-ai/internal/task/repository"
	"taskmaster-ai/pkg/duedate"
	"taskmaster-ai/pkg/log"
)

// implUseCase is the private implementation of task.UseCase.
type implUseCase struct {
	repo     repository.Repository
	l        log.Logger
	resolver *duedate.Resolver
	now      func() time.Time
}

var _ task.UseCase = (*implUseCase)(nil)

// New creates a new task UseCase implementation.
func New(repo repository.Repository, l log.Logger, resolver *duedate.Resolver) *implUseCase {
	return &implUseCase{
		repo:     repo,
		l:        l,
		resolver: resolver,
		now:      time.Now,
	}
}

const dateLayout = "2006-01-02"
