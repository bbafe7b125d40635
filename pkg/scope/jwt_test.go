package scope_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskmaster-ai/internal/model"
	"taskmaster-ai/pkg/scope"
)

func TestNew(t *testing.T) {
	_, err := scope.New("", "", 0)
	assert.ErrorIs(t, err, scope.ErrEmptySecret)

	m, err := scope.New("secret", "", 0)
	require.NoError(t, err)
	assert.NotNil(t, m)
}

func TestCreateAndVerify(t *testing.T) {
	m, err := scope.New("test-secret", "taskmaster-test", time.Hour)
	require.NoError(t, err)

	token, err := m.CreateToken(scope.Payload{UserID: "user-1", Email: "ana@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	payload, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", payload.UserID)
	assert.Equal(t, "ana@example.com", payload.Email)
	assert.Equal(t, "user-1", payload.Subject)
	assert.NotEmpty(t, payload.ID)
}

func TestVerify_Invalid(t *testing.T) {
	m, err := scope.New("test-secret", "", time.Hour)
	require.NoError(t, err)

	_, err = m.Verify("not-a-token")
	assert.ErrorIs(t, err, scope.ErrInvalidToken)

	other, err := scope.New("other-secret", "", time.Hour)
	require.NoError(t, err)
	token, err := other.CreateToken(scope.Payload{UserID: "user-1"})
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, scope.ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	secret := "test-secret"
	m, err := scope.New(secret, scope.DefaultIssuer, time.Hour)
	require.NoError(t, err)

	past := time.Now().Add(-2 * time.Hour)
	claims := scope.Payload{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    scope.DefaultIssuer,
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Hour)),
		},
		UserID: "user-1",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, scope.ErrTokenExpired)
}

func TestScopeContext(t *testing.T) {
	_, ok := scope.GetScopeFromContext(context.Background())
	assert.False(t, ok)

	sc := scope.NewScope(scope.Payload{UserID: "u1", Email: "u1@example.com"})
	ctx := scope.SetScopeToContext(context.Background(), sc)

	got, ok := scope.GetScopeFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, model.Scope{UserID: "u1", Email: "u1@example.com"}, got)
}
