package log_test

import (
	"context"
	"testing"

	"taskmaster-ai/pkg/log"
)

func TestRequestIDRoundTrip(t *testing.T) {
	ctx := log.WithRequestID(context.Background(), "req-1")
	if got := log.RequestIDFromContext(ctx); got != "req-1" {
		t.Errorf("expected req-1, got %q", got)
	}
	if got := log.RequestIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty request id, got %q", got)
	}
}

func TestInitDoesNotPanic(t *testing.T) {
	cases := []log.ZapConfig{
		{Level: "debug", Mode: log.ModeDevelopment, Encoding: log.EncodingConsole, ColorEnabled: true},
		{Level: "info", Mode: log.ModeProduction, Encoding: log.EncodingJSON},
		{Level: "not-a-level", Mode: "", Encoding: ""},
	}
	for _, cfg := range cases {
		l := log.Init(cfg)
		l.Infof(log.WithRequestID(context.Background(), "abc"), "hello %s", "world")
		l.Debug(context.Background(), "debug line")
	}
}
