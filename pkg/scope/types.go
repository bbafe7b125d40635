package scope

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Payload is the claim set carried by a token.
type Payload struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type jwtManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}
