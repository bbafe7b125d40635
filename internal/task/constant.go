package task

const (
	MinTitleLength       = 3
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
	MaxCategoryLength    = 50
	MaxEstimatedTime     = 10080
	MaxSubtaskTitle      = 200

	DefaultCategory = "general"
	FilterAll       = "all"

	ProductivityDays = 7
)
