package analysis

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"taskmaster-ai/pkg/llmprovider"
	"taskmaster-ai/pkg/log"
)

type mockProvider struct {
	text  string
	err   error
	block bool

	mu      sync.Mutex
	calls   int
	lastReq *llmprovider.Request
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	m.calls++
	m.lastReq = req
	m.mu.Unlock()

	if m.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{Text: m.text, ProviderName: m.Name(), ModelName: m.Model()}, nil
}

func (m *mockProvider) Name() string  { return "mock" }
func (m *mockProvider) Model() string { return "mock-1" }

func newTestEngine(p llmprovider.Provider, timeout time.Duration) *Engine {
	return New(log.NewNop(), Config{
		Provider: llmprovider.ProviderConfig{
			Kind:    llmprovider.KindQwen,
			APIKey:  "test-key",
			Timeout: timeout,
		},
		Classifier: DefaultClassifierOptions(),
	}, p)
}

func TestAnalyze_ProviderSuccess(t *testing.T) {
	p := &mockProvider{text: `{"priority":"urgent","estimatedTime":99999,"tips":["a","b","c","d"],"subtasks":["1","2","3","4","5","6"]}`}
	e := newTestEngine(p, time.Second)

	got, trace := e.AnalyzeWithTrace(context.Background(), AnalysisRequest{Title: "Ship release", Description: "Tag and publish"})

	if got.Priority != PriorityUrgent {
		t.Errorf("expected urgent, got %s", got.Priority)
	}
	if got.EstimatedTimeMinutes != MaxEstimatedMinutes {
		t.Errorf("expected %d, got %d", MaxEstimatedMinutes, got.EstimatedTimeMinutes)
	}
	if len(got.Tips) != MaxTips || len(got.Subtasks) != MaxSubtasks {
		t.Errorf("expected truncated lists, got %d tips and %d subtasks", len(got.Tips), len(got.Subtasks))
	}
	if got.Source != "mock" {
		t.Errorf("expected source mock, got %q", got.Source)
	}

	wantStates := []State{StateStart, StateCallProvider, StateParseResponse, StateDone}
	if !reflect.DeepEqual(trace.States, wantStates) {
		t.Errorf("expected states %v, got %v", wantStates, trace.States)
	}
	if trace.Reason != ReasonNone {
		t.Errorf("expected no fallback reason, got %q", trace.Reason)
	}

	if p.calls != 1 {
		t.Errorf("expected exactly one provider call, got %d", p.calls)
	}
	if !p.lastReq.JSONMode || p.lastReq.Prompt == "" {
		t.Errorf("unexpected provider request %+v", p.lastReq)
	}
}

func TestAnalyze_UnknownPriorityBecomesMedium(t *testing.T) {
	e := newTestEngine(&mockProvider{text: `{"priority":"whenever","estimatedTime":-5}`}, time.Second)

	got := e.Analyze(context.Background(), AnalysisRequest{Title: "Water plants"})
	if got.Priority != PriorityMedium {
		t.Errorf("expected medium, got %s", got.Priority)
	}
	if got.EstimatedTimeMinutes != MinEstimatedMinutes {
		t.Errorf("expected %d, got %d", MinEstimatedMinutes, got.EstimatedTimeMinutes)
	}
}

func TestAnalyze_MalformedOutputFallsBack(t *testing.T) {
	req := AnalysisRequest{Title: "Prepare quarterly report", Description: "Needs executive summary and charts"}
	e := newTestEngine(&mockProvider{text: "I cannot help with that."}, time.Second)

	got, trace := e.AnalyzeWithTrace(context.Background(), req)

	if want := Classify(req.Title, req.Description); !reflect.DeepEqual(got, want) {
		t.Errorf("expected heuristic result %+v, got %+v", want, got)
	}
	if trace.Reason != ReasonParseError {
		t.Errorf("expected parse_error, got %q", trace.Reason)
	}
	var pe *ParseError
	if !errors.As(trace.Err, &pe) {
		t.Errorf("expected ParseError in trace, got %v", trace.Err)
	}
	wantStates := []State{StateStart, StateCallProvider, StateParseResponse, StateFallback, StateDone}
	if !reflect.DeepEqual(trace.States, wantStates) {
		t.Errorf("expected states %v, got %v", wantStates, trace.States)
	}
}

func TestAnalyze_TransportErrorFallsBack(t *testing.T) {
	req := AnalysisRequest{Title: "URGENT: buy milk"}
	p := &mockProvider{err: &llmprovider.TransportError{Provider: "mock", Err: errors.New("connection refused")}}
	e := newTestEngine(p, time.Second)

	got, trace := e.AnalyzeWithTrace(context.Background(), req)

	if want := Classify(req.Title, req.Description); !reflect.DeepEqual(got, want) {
		t.Errorf("expected heuristic result %+v, got %+v", want, got)
	}
	if got.Priority != PriorityUrgent {
		t.Errorf("expected urgent, got %s", got.Priority)
	}
	if trace.Reason != ReasonTransportError {
		t.Errorf("expected transport_error, got %q", trace.Reason)
	}
	if p.calls != 1 {
		t.Errorf("expected no retries, got %d calls", p.calls)
	}
}

func TestAnalyze_PlainErrorIsTreatedAsTransport(t *testing.T) {
	e := newTestEngine(&mockProvider{err: errors.New("boom")}, time.Second)

	_, trace := e.AnalyzeWithTrace(context.Background(), AnalysisRequest{Title: "Buy milk"})

	var te *llmprovider.TransportError
	if !errors.As(trace.Err, &te) {
		t.Fatalf("expected TransportError, got %v", trace.Err)
	}
	if trace.Reason != ReasonTransportError {
		t.Errorf("expected transport_error, got %q", trace.Reason)
	}
}

func TestAnalyze_TimeoutFallsBack(t *testing.T) {
	req := AnalysisRequest{Title: "Important meeting", Description: "Quarterly sync"}
	e := newTestEngine(&mockProvider{block: true}, 50*time.Millisecond)

	start := time.Now()
	got, trace := e.AnalyzeWithTrace(context.Background(), req)
	elapsed := time.Since(start)

	if elapsed > time.Second {
		t.Fatalf("analysis took %v, expected about the 50ms timeout", elapsed)
	}
	if want := Classify(req.Title, req.Description); !reflect.DeepEqual(got, want) {
		t.Errorf("expected heuristic result %+v, got %+v", want, got)
	}
	if trace.Reason != ReasonTimeout {
		t.Errorf("expected timeout, got %q", trace.Reason)
	}
}

func TestAnalyze_CallerCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	e := newTestEngine(&mockProvider{block: true}, 10*time.Second)

	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	got := e.Analyze(ctx, AnalysisRequest{Title: "Buy milk"})
	if time.Since(start) > time.Second {
		t.Fatal("provider call was not cancelled with the caller context")
	}
	if got.Source != SourceHeuristic {
		t.Errorf("expected heuristic source, got %q", got.Source)
	}
}

func TestAnalyze_NoProvider(t *testing.T) {
	tcs := map[string]*Engine{
		"nil provider": New(log.NewNop(), Config{
			Provider:   llmprovider.ProviderConfig{Kind: llmprovider.KindGemini, APIKey: "k"},
			Classifier: DefaultClassifierOptions(),
		}, nil),
		"kind none": New(log.NewNop(), Config{
			Provider:   llmprovider.ProviderConfig{Kind: llmprovider.KindNone, APIKey: "k"},
			Classifier: DefaultClassifierOptions(),
		}, &mockProvider{}),
		"missing credential": New(log.NewNop(), Config{
			Provider:   llmprovider.ProviderConfig{Kind: llmprovider.KindQwen},
			Classifier: DefaultClassifierOptions(),
		}, &mockProvider{}),
	}

	for name, e := range tcs {
		t.Run(name, func(t *testing.T) {
			got, trace := e.AnalyzeWithTrace(context.Background(), AnalysisRequest{Title: "Buy milk"})
			if !reflect.DeepEqual(got, Classify("Buy milk", "")) {
				t.Errorf("expected heuristic result, got %+v", got)
			}
			if trace.Reason != ReasonNoProvider {
				t.Errorf("expected no_provider, got %q", trace.Reason)
			}
			wantStates := []State{StateStart, StateFallback, StateDone}
			if !reflect.DeepEqual(trace.States, wantStates) {
				t.Errorf("expected states %v, got %v", wantStates, trace.States)
			}
			if e.Status().Configured {
				t.Error("status must report not configured")
			}
		})
	}
}

func TestAnalyze_AlwaysValid(t *testing.T) {
	outputs := []string{
		`{"priority":"🔥","estimatedTime":"lots","tips":null,"subtasks":null}`,
		`{"priority":null}`,
		`prefix {"priority":"alta","estimatedTime":"3"} suffix`,
		`not json at all`,
		``,
	}

	for _, out := range outputs {
		e := newTestEngine(&mockProvider{text: out}, time.Second)
		got := e.Analyze(context.Background(), AnalysisRequest{Title: "Anything goes"})

		if !got.Priority.IsValid() {
			t.Errorf("%q: invalid priority %q", out, got.Priority)
		}
		if got.EstimatedTimeMinutes < MinEstimatedMinutes || got.EstimatedTimeMinutes > MaxEstimatedMinutes {
			t.Errorf("%q: time out of range %d", out, got.EstimatedTimeMinutes)
		}
		if got.Tips == nil || len(got.Tips) > MaxTips {
			t.Errorf("%q: bad tips %#v", out, got.Tips)
		}
		if got.Subtasks == nil || len(got.Subtasks) > MaxSubtasks {
			t.Errorf("%q: bad subtasks %#v", out, got.Subtasks)
		}
	}
}

func TestEngine_Status(t *testing.T) {
	e := newTestEngine(&mockProvider{}, time.Second)
	want := ProviderStatus{Provider: "mock", Model: "mock-1", Configured: true}
	if got := e.Status(); got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestBuildPrompt(t *testing.T) {
	p := BuildPrompt(AnalysisRequest{Title: "  Book flights ", Description: ""})
	if !strings.Contains(p, "Title: Book flights") || !strings.Contains(p, "Description: (none)") {
		t.Errorf("unexpected prompt:\n%s", p)
	}
}
