package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500

	// DateFormat renders calendar days in the zone the value already carries.
	DateFormat = "2006-01-02"
	// DateTimeFormat renders instants in UTC with millisecond precision.
	DateTimeFormat = "2006-01-02T15:04:05.000Z07:00"
)
