package middleware

import (
	"context"

	"taskmaster-ai/config"
	"taskmaster-ai/internal/model"
	"taskmaster-ai/pkg/log"
)

// Authenticator resolves a bearer token to the caller's scope.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (model.Scope, error)
}

type Middleware struct {
	l           log.Logger
	auth        Authenticator
	corsConfig  config.CORSConfig
	rateLimiter *rateLimiter
}

func New(l log.Logger, auth Authenticator, corsConfig config.CORSConfig, rateLimit config.RateLimitConfig) Middleware {
	return Middleware{
		l:           l,
		auth:        auth,
		corsConfig:  corsConfig,
		rateLimiter: newRateLimiter(rateLimit.RequestsPerMin, rateLimit.Burst),
	}
}
