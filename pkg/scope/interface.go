package scope

import "time"

// Manager issues and verifies the bearer tokens handed out at login.
type Manager interface {
	CreateToken(payload Payload) (string, error)
	Verify(token string) (Payload, error)
}

// New creates an HS256 token manager. ttl defaults to seven days.
func New(secret, issuer string, ttl time.Duration) (Manager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	if issuer == "" {
		issuer = DefaultIssuer
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &jwtManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}
