package middleware

const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
	BearerPrefix        = "Bearer "

	ctxKeyScope = "scope"
)

// Auth error messages
const (
	MsgTokenNotProvided = "token not provided"
	MsgInvalidToken     = "invalid token"
	MsgTokenExpired     = "token expired"
	MsgUserNotFound     = "user not found"
	MsgAuthFailed       = "authentication error"
)
