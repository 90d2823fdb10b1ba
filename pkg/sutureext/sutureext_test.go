package sutureext

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/thejerf/suture/v4"
)

func TestSanitizeError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, SanitizeError(ctx, nil))

	err := errors.New("failed")
	require.Equal(t, err, SanitizeError(ctx, err))

	// A context error from something other than ctx is not a context error.
	sanitized := SanitizeError(ctx, context.Canceled)
	require.Error(t, sanitized)
	require.False(t, errors.Is(sanitized, context.Canceled))

	cancel()
	require.ErrorIs(t, SanitizeError(ctx, err), context.Canceled)
}

func TestTerminalService(t *testing.T) {
	ctx := context.Background()

	err := terminalService{Service: NewServiceFunc("done", func(ctx context.Context) error { return nil })}.Serve(ctx)
	require.ErrorIs(t, err, suture.ErrTerminateSupervisorTree)

	failure := errors.New("failed")
	err = terminalService{Service: NewServiceFunc("failed", func(ctx context.Context) error { return failure })}.Serve(ctx)
	require.ErrorIs(t, err, suture.ErrTerminateSupervisorTree)
	require.ErrorContains(t, err, "failed: failed")

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	err = terminalService{Service: NewServiceFunc("canceled", func(ctx context.Context) error { return failure })}.Serve(canceled)
	require.ErrorIs(t, err, context.Canceled)
	require.False(t, errors.Is(err, suture.ErrTerminateSupervisorTree))
}

func TestAddTerminal(t *testing.T) {
	super := NewSimple("test")

	stopped := make(chan struct{})
	Add(super, NewServiceFunc("blocking", func(ctx context.Context) error {
		<-ctx.Done()
		close(stopped)
		return ctx.Err()
	}))

	failure := errors.New("connection closed")
	AddTerminal(super, NewServiceFunc("terminal", func(ctx context.Context) error {
		return failure
	}))

	errC := make(chan error, 1)
	go func() { errC <- super.Serve(context.Background()) }()

	select {
	case <-errC:
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor did not stop")
	}

	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("service was not stopped")
	}
}

func TestAddTerminalCanceled(t *testing.T) {
	super := NewSimple("test")

	AddTerminal(super, NewServiceFunc("loop", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	errC := make(chan error, 1)
	go func() { errC <- super.Serve(ctx) }()
	cancel()

	select {
	case err := <-errC:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("supervisor did not stop")
	}
}
