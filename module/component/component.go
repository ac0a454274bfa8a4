// Package component provides the lifecycle scaffolding for long-lived
// modules: a component is started with a signaler context, reports
// readiness once its workers are up, and is shut down by cancelling the
// context it was started with.
package component

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/atomic"

	"github.com/keelchain/collator-go/module/irrecoverable"
)

// ErrMultipleStartup is thrown when a component is started more than once.
var ErrMultipleStartup = errors.New("component may only be started once")

// Component represents a module that can be started and stopped, and
// exposes channels that close when startup and shutdown have completed.
// Once Start has been called, the channel returned by Done must close
// eventually, whether by graceful shutdown or irrecoverable error.
type Component interface {
	Start(ctx irrecoverable.SignalerContext)

	Ready() <-chan struct{}
	Done() <-chan struct{}
}

// ReadyFunc is called within a ComponentWorker to indicate that the worker
// is ready. The ComponentManager's Ready channel closes once all workers
// have called their ReadyFunc.
type ReadyFunc func()

// ComponentWorker is one worker routine of a component. It uses the given
// context to throw irrecoverable errors and to learn about shutdown, and
// must call ready once its startup work is complete.
type ComponentWorker func(ctx irrecoverable.SignalerContext, ready ReadyFunc)

// ComponentManagerBuilder collects worker routines for a ComponentManager.
type ComponentManagerBuilder interface {
	// AddWorker adds a worker routine for the ComponentManager. Workers
	// run in parallel once the manager is started.
	AddWorker(ComponentWorker) ComponentManagerBuilder

	// Build builds and returns a new ComponentManager instance.
	Build() *ComponentManager
}

type componentManagerBuilder struct {
	workers []ComponentWorker
}

// NewComponentManagerBuilder returns a new ComponentManagerBuilder.
func NewComponentManagerBuilder() ComponentManagerBuilder {
	return &componentManagerBuilder{}
}

func (b *componentManagerBuilder) AddWorker(worker ComponentWorker) ComponentManagerBuilder {
	b.workers = append(b.workers, worker)
	return b
}

func (b *componentManagerBuilder) Build() *ComponentManager {
	return &ComponentManager{
		started:     atomic.NewBool(false),
		ready:       make(chan struct{}),
		done:        make(chan struct{}),
		workersDone: make(chan struct{}),
		workers:     b.workers,
	}
}

var _ Component = (*ComponentManager)(nil)

// ComponentManager runs the worker routines of a component and implements
// the Component interface on their behalf. Ready closes once every worker
// has signaled readiness; Done closes after every worker has returned.
// Irrecoverable errors thrown by any worker cancel the remaining workers
// and are re-thrown to the context passed to Start.
type ComponentManager struct {
	started     *atomic.Bool
	ready       chan struct{}
	done        chan struct{}
	workersDone chan struct{}

	workers []ComponentWorker
}

// Start launches all worker routines. It must only be called once and
// panics otherwise.
func (c *ComponentManager) Start(parent irrecoverable.SignalerContext) {
	if !c.started.CompareAndSwap(false, true) {
		panic(ErrMultipleStartup)
	}

	ctx, cancel := context.WithCancel(parent)
	signalerCtx, errChan := irrecoverable.WithSignaler(ctx)

	// propagate the first irrecoverable error to the parent, after making
	// sure all workers have wound down
	go func() {
		defer func() {
			<-c.workersDone
			cancel()
			close(c.done)
		}()

		select {
		case err, ok := <-errChan:
			if ok {
				cancel()
				parent.Throw(err)
			}
		case <-c.workersDone:
		}
	}()

	var workersReady sync.WaitGroup
	var workersDone sync.WaitGroup
	workersReady.Add(len(c.workers))
	workersDone.Add(len(c.workers))

	for _, worker := range c.workers {
		worker := worker
		go func() {
			defer workersDone.Done()
			var readyOnce sync.Once
			worker(signalerCtx, func() {
				readyOnce.Do(workersReady.Done)
			})
		}()
	}

	go func() {
		workersReady.Wait()
		close(c.ready)
	}()
	go func() {
		workersDone.Wait()
		close(c.workersDone)
	}()
}

// Ready returns a channel which closes once all worker routines have
// signaled readiness. If a worker returns without ever calling its
// ReadyFunc, the channel never closes.
func (c *ComponentManager) Ready() <-chan struct{} {
	return c.ready
}

// Done returns a channel which closes once all worker routines have
// returned.
func (c *ComponentManager) Done() <-chan struct{} {
	return c.done
}
