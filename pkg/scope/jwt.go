package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	nanoid "github.com/matoous/go-nanoid/v2"
)

// CreateToken signs payload, filling the registered claims.
func (m *jwtManager) CreateToken(payload Payload) (string, error) {
	tokenID, err := nanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate token ID: %w", err)
	}

	now := time.Now()
	payload.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    m.issuer,
		Subject:   payload.UserID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		ID:        tokenID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	return token.SignedString(m.secret)
}

// Verify parses token and returns its payload. Expired tokens yield ErrTokenExpired,
// anything else that fails validation yields ErrInvalidToken.
func (m *jwtManager) Verify(token string) (Payload, error) {
	var payload Payload
	parsed, err := jwt.ParseWithClaims(token, &payload, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	}, jwt.WithIssuer(m.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Payload{}, ErrTokenExpired
		}
		return Payload{}, ErrInvalidToken
	}
	if !parsed.Valid || payload.UserID == "" {
		return Payload{}, ErrInvalidToken
	}
	return payload, nil
}
