package usecase

import (
	"taskmaster-ai/internal/user"
	"taskmaster-ai/internal/user/repository"
	"taskmaster-ai/pkg/encrypter"
	"taskmaster-ai/pkg/log"
	"taskmaster-ai/pkg/scope"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo       repository.Repository
	l          log.Logger
	jwtManager scope.Manager
	encrypter  encrypter.Encrypter
}

var _ user.UseCase = (*implUseCase)(nil)

// New creates a new user UseCase implementation.
func New(repo repository.Repository, l log.Logger, jwtManager scope.Manager, enc encrypter.Encrypter) *implUseCase {
	return &implUseCase{
		repo:       repo,
		l:          l,
		jwtManager: jwtManager,
		encrypter:  enc,
	}
}
