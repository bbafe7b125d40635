package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"taskmaster-ai/internal/model"
	"taskmaster-ai/internal/user"
	"taskmaster-ai/pkg/response"
	"taskmaster-ai/pkg/scope"
)

// Auth requires a valid "Authorization: Bearer <token>" header and puts the
// caller's scope on both the gin context and the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := strings.TrimSpace(strings.TrimPrefix(c.GetHeader(HeaderAuthorization), BearerPrefix))
		if token == "" {
			m.abort(c, http.StatusUnauthorized, MsgTokenNotProvided)
			return
		}

		sc, err := m.auth.Authenticate(ctx, token)
		if err != nil {
			switch {
			case errors.Is(err, user.ErrTokenExpired):
				m.abort(c, http.StatusUnauthorized, MsgTokenExpired)
			case errors.Is(err, user.ErrUserNotFound):
				m.abort(c, http.StatusUnauthorized, MsgUserNotFound)
			case errors.Is(err, user.ErrInvalidToken):
				m.abort(c, http.StatusUnauthorized, MsgInvalidToken)
			default:
				m.l.Errorf(ctx, "middleware.Auth: %v", err)
				m.abort(c, http.StatusInternalServerError, MsgAuthFailed)
			}
			return
		}

		c.Set(ctxKeyScope, sc)
		c.Request = c.Request.WithContext(scope.SetScopeToContext(ctx, sc))
		c.Next()
	}
}

// GetScope returns the scope set by Auth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(ctxKeyScope)
	if !ok {
		return scope.GetScopeFromContext(c.Request.Context())
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

func (m Middleware) abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, response.Resp{
		ErrorCode: code,
		Message:   message,
	})
}
