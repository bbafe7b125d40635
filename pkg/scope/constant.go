package scope

import "time"

const (
	DefaultTTL    = 7 * 24 * time.Hour
	DefaultIssuer = "taskmaster-ai"
)

type ctxKey struct{}
