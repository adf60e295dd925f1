package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/JaimeStill/lunch-web/pkg/lifecycle"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew(t *testing.T) {
	lc := lifecycle.New()

	require.NotNil(t, lc)
	assert.NotNil(t, lc.Context())
	assert.False(t, lc.Ready(), "new coordinator should not be ready")
}

func TestCoordinator_Context(t *testing.T) {
	lc := lifecycle.New()
	assert.NoError(t, lc.Context().Err(), "context should not be cancelled")
}

func TestCoordinator_OnStartup(t *testing.T) {
	lc := lifecycle.New()

	var executed atomic.Bool
	lc.OnStartup(func() {
		executed.Store(true)
	})

	lc.WaitForStartup()

	assert.True(t, executed.Load(), "startup function was not executed")
}

func TestCoordinator_OnStartup_Multiple(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		lc.OnStartup(func() {
			count.Add(1)
		})
	}

	lc.WaitForStartup()

	assert.Equal(t, int32(3), count.Load())
}

func TestCoordinator_WaitForStartup_SetsReady(t *testing.T) {
	lc := lifecycle.New()

	assert.False(t, lc.Ready(), "ready before WaitForStartup")
	lc.WaitForStartup()
	assert.True(t, lc.Ready(), "not ready after WaitForStartup")
}

func TestCoordinator_OnShutdown(t *testing.T) {
	lc := lifecycle.New()

	var executed atomic.Bool
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		executed.Store(true)
	})

	require.NoError(t, lc.Shutdown(5*time.Second))
	assert.True(t, executed.Load(), "shutdown function was not executed")
}

func TestCoordinator_OnShutdown_Multiple(t *testing.T) {
	lc := lifecycle.New()

	var count atomic.Int32
	for range 3 {
		lc.OnShutdown(func() {
			<-lc.Context().Done()
			count.Add(1)
		})
	}

	require.NoError(t, lc.Shutdown(5*time.Second))
	assert.Equal(t, int32(3), count.Load())
}

func TestCoordinator_Shutdown_CancelsContext(t *testing.T) {
	lc := lifecycle.New()
	ctx := lc.Context()

	require.NoError(t, lc.Shutdown(5*time.Second))
	assert.Error(t, ctx.Err(), "context should be cancelled after shutdown")
}

func TestCoordinator_Shutdown_Timeout(t *testing.T) {
	lc := lifecycle.New()

	finished := make(chan struct{})
	lc.OnShutdown(func() {
		<-lc.Context().Done()
		time.Sleep(500 * time.Millisecond)
		close(finished)
	})

	assert.Error(t, lc.Shutdown(50*time.Millisecond), "Shutdown should time out")

	<-finished
}

func TestCoordinator_ReadinessChecker(t *testing.T) {
	lc := lifecycle.New()

	var checker lifecycle.ReadinessChecker = lc

	assert.False(t, checker.Ready())
	lc.WaitForStartup()
	assert.True(t, checker.Ready())
}

func TestCoordinator_ConcurrentReady(t *testing.T) {
	lc := lifecycle.New()

	done := make(chan struct{})
	go func() {
		for range 100 {
			_ = lc.Ready()
		}
		close(done)
	}()

	lc.WaitForStartup()

	<-done
}

func TestCoordinator_FullLifecycle(t *testing.T) {
	lc := lifecycle.New()

	var startupComplete atomic.Bool
	var shutdownComplete atomic.Bool

	lc.OnStartup(func() {
		time.Sleep(10 * time.Millisecond)
		startupComplete.Store(true)
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		time.Sleep(10 * time.Millisecond)
		shutdownComplete.Store(true)
	})

	go lc.WaitForStartup()

	assert.Eventually(t, lc.Ready, time.Second, 5*time.Millisecond, "not ready after startup")
	assert.True(t, startupComplete.Load(), "startup did not complete")

	require.NoError(t, lc.Shutdown(5*time.Second))
	assert.True(t, shutdownComplete.Load(), "shutdown did not complete")
}
