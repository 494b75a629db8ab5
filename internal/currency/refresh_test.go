package currency

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newIdleRegistry() *Registry {
	return NewRegistry(new(MockExchangeClient), new(MockCurrencyCache), new(MockCurrencyMemo))
}

func TestNewRefreshScheduler_Constructs(t *testing.T) {
	s := NewRefreshScheduler(newIdleRegistry(), 10*time.Minute)
	require.NotNil(t, s)
	require.Nil(t, s.sched)
}

func TestRefreshScheduler_Shutdown_NoScheduler_ReturnsNil(t *testing.T) {
	s := NewRefreshScheduler(newIdleRegistry(), 10*time.Minute)
	require.NoError(t, s.Shutdown())
	require.Nil(t, s.sched)
}

func TestRefreshScheduler_Start_And_ContextCancel_ShutsDown(t *testing.T) {
	s := NewRefreshScheduler(newIdleRegistry(), 10*time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	require.NoError(t, s.Start(ctx))
	require.NotNil(t, s.sched)

	// Cancel and ensure Shutdown is called by goroutine
	cancel()

	// Wait until s.sched becomes nil (Shutdown sets it to nil)
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if s.sched == nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	require.Nil(t, s.sched, "expected scheduler to be shutdown after ctx cancel")
}

func TestRefreshScheduler_Shutdown_AfterStart_Idempotent(t *testing.T) {
	s := NewRefreshScheduler(newIdleRegistry(), 10*time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Start(ctx))
	require.NotNil(t, s.sched)

	require.NoError(t, s.Shutdown())
	require.Nil(t, s.sched)

	require.NoError(t, s.Shutdown())
}
