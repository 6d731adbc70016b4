package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	mock := NewMockProvider()
	mock.EnqueueError(&ErrProviderUnavailable{Err: errors.New("503")})
	mock.EnqueueResponse(json.RawMessage(`{"ok":true}`))

	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{MaxTokens: 100})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	mock := NewMockProvider()
	for i := 0; i < 5; i++ {
		mock.EnqueueError(&ErrRateLimit{Err: errors.New("429")})
	}

	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{MaxTokens: 100})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	var rateLimit *ErrRateLimit
	if !errors.As(err, &rateLimit) {
		t.Errorf("expected ErrRateLimit, got %T", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetryInvalidResponseOnce(t *testing.T) {
	mock := NewMockProvider()
	mock.EnqueueError(&ErrInvalidResponse{Err: errors.New("bad schema")})
	mock.EnqueueError(&ErrInvalidResponse{Err: errors.New("bad schema again")})
	mock.EnqueueResponse(json.RawMessage(`{}`))

	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{MaxTokens: 100})
	if err == nil {
		t.Fatal("expected error: invalid response retries only once")
	}
	if mock.CallCount() != 2 {
		t.Errorf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetryRespectsContextCancellation(t *testing.T) {
	mock := NewMockProvider()
	mock.EnqueueError(&ErrProviderUnavailable{Err: errors.New("503")})

	p := WithRetry(mock, RetryConfig{
		MaxAttempts: 3,
		InitialWait: 1 * time.Second,
		MaxWait:     5 * time.Second,
		Multiplier:  2.0,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.Generate(ctx, Request{MaxTokens: 100})
	if err == nil {
		t.Fatal("expected error with cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestRetryDoesNotRetryUnknownErrors(t *testing.T) {
	mock := NewMockProvider()
	mock.EnqueueError(errors.New("something unexpected"))

	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{MaxTokens: 100})
	if err == nil {
		t.Fatal("expected error")
	}
	if mock.CallCount() != 1 {
		t.Errorf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestNextWaitCapsAtMax(t *testing.T) {
	cfg := RetryConfig{MaxWait: 10 * time.Second, Multiplier: 2.0}

	tests := []struct {
		current time.Duration
		want    time.Duration
	}{
		{1 * time.Second, 2 * time.Second},
		{4 * time.Second, 8 * time.Second},
		{8 * time.Second, 10 * time.Second},
		{10 * time.Second, 10 * time.Second},
	}

	for _, tt := range tests {
		got := nextWait(tt.current, cfg)
		if got != tt.want {
			t.Errorf("nextWait(%s) = %s, want %s", tt.current, got, tt.want)
		}
	}
}

func TestJitterStaysInRange(t *testing.T) {
	base := 100 * time.Millisecond
	for i := 0; i < 50; i++ {
		d := jitter(base)
		if d < 80*time.Millisecond || d > 120*time.Millisecond {
			t.Fatalf("jitter out of range: %s", d)
		}
	}
}
