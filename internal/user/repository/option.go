package repository

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Name         string
	Email        string
	PasswordHash string
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    string
	Email string
}

// UpdateUserOptions holds parameters for updating an existing User.
// Empty fields keep their stored value.
type UpdateUserOptions struct {
	ID           string
	Name         string
	PasswordHash string
}
