package encrypter

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the cost the service has always hashed with.
const DefaultCost = 12

var ErrMismatchedPassword = errors.New("password does not match")

// Encrypter hashes and checks user passwords.
type Encrypter interface {
	HashPassword(password string) (string, error)
	ComparePassword(hash, password string) error
}

type bcryptEncrypter struct {
	cost int
}

// New returns a bcrypt-backed Encrypter. A cost outside bcrypt's range falls back to DefaultCost.
func New(cost int) Encrypter {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	return &bcryptEncrypter{cost: cost}
}

func (e *bcryptEncrypter) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), e.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (e *bcryptEncrypter) ComparePassword(hash, password string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatchedPassword
	}
	return err
}
