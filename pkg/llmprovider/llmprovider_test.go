package llmprovider

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestParseKind(t *testing.T) {
	tcs := map[string]struct {
		input   string
		want    Kind
		wantErr bool
	}{
		"empty":    {input: "", want: KindNone},
		"fallback": {input: "fallback", want: KindNone},
		"gemini":   {input: "Gemini", want: KindGemini},
		"qwen":     {input: " qwen ", want: KindQwen},
		"deepseek": {input: "deepseek", want: KindDeepSeek},
		"unknown":  {input: "gpt", wantErr: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got, err := ParseKind(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownProvider) {
					t.Fatalf("expected ErrUnknownProvider, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestProviderConfig(t *testing.T) {
	if (ProviderConfig{Kind: KindGemini}).Configured() {
		t.Error("provider without API key must not be configured")
	}
	if (ProviderConfig{Kind: KindNone, APIKey: "k"}).Configured() {
		t.Error("kind none must not be configured")
	}
	if !(ProviderConfig{Kind: KindQwen, APIKey: "k"}).Configured() {
		t.Error("qwen with key should be configured")
	}
	if got := (ProviderConfig{}).EffectiveTimeout(); got != DefaultTimeout {
		t.Errorf("expected default timeout, got %v", got)
	}
	if got := (ProviderConfig{Timeout: time.Second}).EffectiveTimeout(); got != time.Second {
		t.Errorf("expected 1s, got %v", got)
	}
}

func TestNewProvider_NotConfigured(t *testing.T) {
	if _, err := NewProvider(ProviderConfig{Kind: KindGemini}); !errors.Is(err, ErrNoProviderConfigured) {
		t.Fatalf("expected ErrNoProviderConfigured, got %v", err)
	}
}

func TestNewProvider_Kinds(t *testing.T) {
	tcs := map[Kind]string{
		KindGemini:   "gemini",
		KindQwen:     "qwen",
		KindDeepSeek: "deepseek",
	}

	for kind, wantName := range tcs {
		p, err := NewProvider(ProviderConfig{Kind: kind, APIKey: "key", Model: "m-1"})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", kind, err)
		}
		if p.Name() != wantName {
			t.Errorf("expected name %q, got %q", wantName, p.Name())
		}
		if p.Model() != "m-1" {
			t.Errorf("expected model m-1, got %q", p.Model())
		}
	}
}

func TestQwenAdapter_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"priority\":\"high\"}"},"finish_reason":"stop"}],"usage":{"prompt_tokens":3,"completion_tokens":2,"total_tokens":5}}`))
	}))
	defer ts.Close()

	p, err := NewProvider(ProviderConfig{Kind: KindQwen, APIKey: "key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := p.GenerateContent(context.Background(), &Request{Prompt: "hi", JSONMode: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != `{"priority":"high"}` {
		t.Errorf("unexpected text: %q", resp.Text)
	}
	if resp.ProviderName != "qwen" {
		t.Errorf("unexpected provider: %q", resp.ProviderName)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 5 {
		t.Errorf("unexpected usage: %+v", resp.Usage)
	}
}

func TestDeepSeekAdapter_StatusIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer ts.Close()

	p, err := NewProvider(ProviderConfig{Kind: KindDeepSeek, APIKey: "key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = p.GenerateContent(context.Background(), &Request{Prompt: "hi"})
	var te *TransportError
	if !errors.As(err, &te) {
		t.Fatalf("expected TransportError, got %T %v", err, err)
	}
	if te.Provider != "deepseek" || te.Timeout {
		t.Errorf("unexpected transport error: %+v", te)
	}
}

func TestGeminiAdapter_EmptyTextIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	p, err := NewProvider(ProviderConfig{Kind: KindGemini, APIKey: "key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err = p.GenerateContent(context.Background(), &Request{Prompt: "hi"})
	if !errors.Is(err, ErrEmptyResponse) {
		t.Fatalf("expected ErrEmptyResponse, got %v", err)
	}
}

func TestAdapter_TimeoutIsMarked(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer ts.Close()

	p, err := NewProvider(ProviderConfig{Kind: KindQwen, APIKey: "key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = p.GenerateContent(ctx, &Request{Prompt: "hi"})
	if !errors.Is(err, ErrProviderTimeout) {
		t.Fatalf("expected ErrProviderTimeout, got %v", err)
	}
}
