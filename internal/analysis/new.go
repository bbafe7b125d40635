package analysis

import (
	"context"

	"taskmaster-ai/pkg/llmprovider"
	"taskmaster-ai/pkg/log"
)

// Analyzer produces a TaskAnalysis for a task. It never fails.
type Analyzer interface {
	Analyze(ctx context.Context, req AnalysisRequest) TaskAnalysis
	AnalyzeWithTrace(ctx context.Context, req AnalysisRequest) (TaskAnalysis, Trace)
	Status() ProviderStatus
}

// Engine holds only immutable configuration and is safe for concurrent use.
type Engine struct {
	l        log.Logger
	cfg      Config
	provider llmprovider.Provider
}

var _ Analyzer = (*Engine)(nil)

// New creates an Engine. provider may be nil, in which case every call takes
// the heuristic path.
func New(l log.Logger, cfg Config, provider llmprovider.Provider) *Engine {
	return &Engine{
		l:        l,
		cfg:      cfg,
		provider: provider,
	}
}
