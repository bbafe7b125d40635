package scope

import (
	"context"

	"taskmaster-ai/internal/model"
)

// SetScopeToContext stores the authenticated scope on ctx.
func SetScopeToContext(ctx context.Context, sc model.Scope) context.Context {
	return context.WithValue(ctx, ctxKey{}, sc)
}

// GetScopeFromContext returns the scope set by the auth middleware.
func GetScopeFromContext(ctx context.Context) (model.Scope, bool) {
	sc, ok := ctx.Value(ctxKey{}).(model.Scope)
	return sc, ok
}

// NewScope builds a scope from a verified payload.
func NewScope(payload Payload) model.Scope {
	return model.Scope{
		UserID: payload.UserID,
		Email:  payload.Email,
	}
}
