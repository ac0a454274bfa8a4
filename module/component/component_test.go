package component_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keelchain/collator-go/module/component"
	"github.com/keelchain/collator-go/module/irrecoverable"
	"github.com/keelchain/collator-go/utils/unittest"
)

// TestComponentManager_Lifecycle checks that Ready closes once all workers
// report ready, and Done closes once all workers have returned after
// cancellation.
func TestComponentManager_Lifecycle(t *testing.T) {
	manager := component.NewComponentManagerBuilder().
		AddWorker(func(ctx irrecoverable.SignalerContext, ready component.ReadyFunc) {
			ready()
			<-ctx.Done()
		}).
		AddWorker(func(ctx irrecoverable.SignalerContext, ready component.ReadyFunc) {
			ready()
			<-ctx.Done()
		}).
		Build()

	ctx, cancel := context.WithCancel(context.Background())
	signalerCtx := irrecoverable.NewMockSignalerContext(t, ctx)

	manager.Start(signalerCtx)
	unittest.RequireCloseBefore(t, manager.Ready(), time.Second, "all workers ready")

	cancel()
	unittest.RequireCloseBefore(t, manager.Done(), time.Second, "all workers done")
}

// TestComponentManager_ReadyBlocksOnSlowWorker checks that Ready does not
// close while any worker has yet to report ready.
func TestComponentManager_ReadyBlocksOnSlowWorker(t *testing.T) {
	release := make(chan struct{})

	manager := component.NewComponentManagerBuilder().
		AddWorker(func(ctx irrecoverable.SignalerContext, ready component.ReadyFunc) {
			ready()
			<-ctx.Done()
		}).
		AddWorker(func(ctx irrecoverable.SignalerContext, ready component.ReadyFunc) {
			<-release
			ready()
			<-ctx.Done()
		}).
		Build()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	manager.Start(irrecoverable.NewMockSignalerContext(t, ctx))

	unittest.RequireNeverClosedWithin(t, manager.Ready(), 50*time.Millisecond, "one worker is not ready yet")

	close(release)
	unittest.RequireCloseBefore(t, manager.Ready(), time.Second, "all workers ready")
}

// TestComponentManager_ThrowPropagates checks that an irrecoverable error
// thrown by a worker reaches the parent context and shuts the component
// down.
func TestComponentManager_ThrowPropagates(t *testing.T) {
	expected := errors.New("worker exploded")

	manager := component.NewComponentManagerBuilder().
		AddWorker(func(ctx irrecoverable.SignalerContext, ready component.ReadyFunc) {
			ready()
			ctx.Throw(expected)
		}).
		Build()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signalerCtx, errChan := irrecoverable.WithSignaler(ctx)

	manager.Start(signalerCtx)

	select {
	case err := <-errChan:
		assert.ErrorIs(t, err, expected)
	case <-time.After(time.Second):
		t.Fatal("expected error to propagate")
	}
	unittest.RequireCloseBefore(t, manager.Done(), time.Second, "component should shut down")
}

// TestComponentManager_DoubleStartPanics checks the single-start contract.
func TestComponentManager_DoubleStartPanics(t *testing.T) {
	manager := component.NewComponentManagerBuilder().Build()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	signalerCtx := irrecoverable.NewMockSignalerContext(t, ctx)

	manager.Start(signalerCtx)
	require.PanicsWithError(t, component.ErrMultipleStartup.Error(), func() {
		manager.Start(signalerCtx)
	})
}
