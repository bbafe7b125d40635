package model

import "time"

// User is a registered account. PasswordHash never leaves the service.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
