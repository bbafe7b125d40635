package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrNoProviderConfigured indicates the provider kind is none or the credential is absent
	ErrNoProviderConfigured = errors.New("no provider configured")

	// ErrUnknownProvider indicates an unsupported provider kind
	ErrUnknownProvider = errors.New("unknown provider")

	// ErrEmptyResponse indicates the vendor answered without any text
	ErrEmptyResponse = errors.New("empty response")

	// ErrProviderTimeout indicates a provider request timed out
	ErrProviderTimeout = errors.New("provider timeout")
)

// TransportError wraps every failure that happens while talking to a vendor:
// network errors, non-2xx statuses, timeouts and undecodable envelopes.
type TransportError struct {
	Provider string
	Timeout  bool
	Err      error
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return fmt.Sprintf("provider %s: %v: %v", e.Provider, ErrProviderTimeout, e.Err)
	}
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrProviderTimeout) match timed-out calls.
func (e *TransportError) Is(target error) bool {
	return e.Timeout && target == ErrProviderTimeout
}

// newTransportError classifies err, marking it as a timeout when the context
// deadline expired or the network layer reported one.
func newTransportError(ctx context.Context, provider string, err error) *TransportError {
	te := &TransportError{Provider: provider, Err: err}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		te.Timeout = true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		te.Timeout = true
	}
	return te
}
