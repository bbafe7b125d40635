package user

const (
	MinPasswordLength = 6
	MinNameLength     = 2
	MaxNameLength     = 50
)
