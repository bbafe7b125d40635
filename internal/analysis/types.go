package analysis

import "taskmaster-ai/pkg/llmprovider"

// Priority is the closed set of priorities an analysis can produce.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// IsValid reports whether p is one of the four known priorities.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

// TaskAnalysis is the normalized result of either analysis path.
// Tips and Subtasks are never nil.
type TaskAnalysis struct {
	Priority             Priority `json:"priority"`
	EstimatedTimeMinutes int      `json:"estimatedTime"`
	Tips                 []string `json:"tips"`
	Subtasks             []string `json:"subtasks"`
	Source               string   `json:"source"`
}

// AnalysisRequest is the input of a single analysis.
type AnalysisRequest struct {
	Title       string
	Description string
}

// ClassifierOptions tunes the heuristic path.
type ClassifierOptions struct {
	// ScaleByDescription enables the description-length refinement of the time estimate.
	ScaleByDescription bool
	// MaxSubtasks is clamped to [0, len(defaultSubtasks)].
	MaxSubtasks int
}

// DefaultClassifierOptions returns the options used when nothing is configured.
func DefaultClassifierOptions() ClassifierOptions {
	return ClassifierOptions{MaxSubtasks: DefaultMaxSubtasks}
}

// Config is the immutable configuration of an Engine.
type Config struct {
	Provider   llmprovider.ProviderConfig
	Classifier ClassifierOptions
}

// State is a step of the per-call analysis state machine.
type State string

const (
	StateStart         State = "start"
	StateCallProvider  State = "call_provider"
	StateParseResponse State = "parse_response"
	StateFallback      State = "fallback"
	StateDone          State = "done"
)

// FallbackReason explains why the heuristic path was taken.
type FallbackReason string

const (
	ReasonNone           FallbackReason = ""
	ReasonNoProvider     FallbackReason = "no_provider"
	ReasonTransportError FallbackReason = "transport_error"
	ReasonTimeout        FallbackReason = "timeout"
	ReasonParseError     FallbackReason = "parse_error"
)

// Trace records the path a single analysis took through the state machine.
type Trace struct {
	States []State
	Reason FallbackReason
	Err    error
}

// ProviderStatus describes the configured provider for health reporting.
type ProviderStatus struct {
	Provider   string
	Model      string
	Configured bool
}
