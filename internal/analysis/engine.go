package analysis

import (
	"context"
	"errors"

	"taskmaster-ai/pkg/llmprovider"
)

// Analyze returns a normalized TaskAnalysis from the configured provider, or
// from the heuristic classifier when the provider is absent or fails.
func (e *Engine) Analyze(ctx context.Context, req AnalysisRequest) TaskAnalysis {
	result, _ := e.AnalyzeWithTrace(ctx, req)
	return result
}

// AnalyzeWithTrace runs Start -> CallProvider -> ParseResponse -> Done, with a
// single transition to Fallback on any failure. Exactly one provider attempt is made.
func (e *Engine) AnalyzeWithTrace(ctx context.Context, req AnalysisRequest) (TaskAnalysis, Trace) {
	trace := Trace{States: []State{StateStart}}

	if e.provider == nil || !e.cfg.Provider.Configured() {
		e.l.Debugf(ctx, "%s: %s", LogPrefixAnalyze, MsgFallbackNoProvider)
		return e.fallback(req, &trace, ReasonNoProvider, llmprovider.ErrNoProviderConfigured), trace
	}

	trace.States = append(trace.States, StateCallProvider)
	raw, err := e.callProvider(ctx, req)
	if err != nil {
		reason := ReasonTransportError
		if errors.Is(err, llmprovider.ErrProviderTimeout) {
			reason = ReasonTimeout
		}
		e.l.Warnf(ctx, "%s: %s: provider=%s reason=%s: %v", LogPrefixAnalyze, MsgFallbackTransport, e.provider.Name(), reason, err)
		return e.fallback(req, &trace, reason, err), trace
	}

	trace.States = append(trace.States, StateParseResponse)
	result, err := Parse(raw)
	if err != nil {
		e.l.Warnf(ctx, "%s: %s: provider=%s: %v", LogPrefixAnalyze, MsgFallbackParse, e.provider.Name(), err)
		return e.fallback(req, &trace, ReasonParseError, err), trace
	}

	result.Source = e.provider.Name()
	trace.States = append(trace.States, StateDone)
	e.l.Infof(ctx, "%s: analyzed by %s: priority=%s estimatedTime=%d", LogPrefixAnalyze, result.Source, result.Priority, result.EstimatedTimeMinutes)
	return result, trace
}

// callProvider makes the single bounded provider attempt. Every failure comes
// back as a *llmprovider.TransportError.
func (e *Engine) callProvider(ctx context.Context, req AnalysisRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Provider.EffectiveTimeout())
	defer cancel()

	resp, err := e.provider.GenerateContent(ctx, buildProviderRequest(req))
	if err != nil {
		var te *llmprovider.TransportError
		if errors.As(err, &te) {
			return "", te
		}
		return "", &llmprovider.TransportError{
			Provider: e.provider.Name(),
			Timeout:  errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded),
			Err:      err,
		}
	}
	if resp == nil {
		return "", &llmprovider.TransportError{Provider: e.provider.Name(), Err: llmprovider.ErrEmptyResponse}
	}
	return resp.Text, nil
}

func (e *Engine) fallback(req AnalysisRequest, trace *Trace, reason FallbackReason, err error) TaskAnalysis {
	trace.States = append(trace.States, StateFallback, StateDone)
	trace.Reason = reason
	trace.Err = err
	return ClassifyWithOptions(req.Title, req.Description, e.cfg.Classifier)
}

// Status reports the configured provider without calling it.
func (e *Engine) Status() ProviderStatus {
	if e.provider == nil || !e.cfg.Provider.Configured() {
		return ProviderStatus{Provider: string(llmprovider.KindNone)}
	}
	return ProviderStatus{
		Provider:   e.provider.Name(),
		Model:      e.provider.Model(),
		Configured: true,
	}
}
