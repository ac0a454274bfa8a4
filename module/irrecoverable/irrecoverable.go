// Package irrecoverable provides the error-signaling plumbing used by
// long-lived components: instead of panicking, a component throws an
// irrecoverable error into the context it was started with, and whoever
// started it decides whether to restart or shut down.
package irrecoverable

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/atomic"
)

// Signaler sends the error out.
type Signaler struct {
	errChan   chan error
	errThrown *atomic.Bool
}

func NewSignaler() (*Signaler, <-chan error) {
	errChan := make(chan error, 1)
	signaler := &Signaler{
		errChan:   errChan,
		errThrown: atomic.NewBool(false),
	}
	return signaler, errChan
}

// Throw is a narrow drop-in replacement for panic, log.Fatal, log.Panic,
// etc. anywhere there's something connected to the error channel. It only
// sends the first error to be thrown and does not return.
func (s *Signaler) Throw(err error) {
	if s.errThrown.CompareAndSwap(false, true) {
		s.errChan <- err
		close(s.errChan)
	}
	runtime.Goexit()
}

// SignalerContext is a constrained drop-in replacement for context.Context
// that can also carry an irrecoverable error upward.
type SignalerContext interface {
	context.Context
	Throw(err error) // delegates to the signaler
	sealed()         // private, to constrain users to WithSignaler
}

type signalerCtx struct {
	context.Context
	*Signaler
}

func (sc signalerCtx) sealed() {}

// WithSignaler is the One True Way of getting a SignalerContext.
func WithSignaler(parent context.Context) (SignalerContext, <-chan error) {
	sig, errChan := NewSignaler()
	return &signalerCtx{parent, sig}, errChan
}

// Throw enables throwing an irrecoverable error from wherever a
// context.Context is available, provided it was derived from a
// SignalerContext somewhere up the chain.
func Throw(ctx context.Context, err error) {
	signalerAbleContext, ok := ctx.(SignalerContext)
	if ok {
		signalerAbleContext.Throw(err)
	}
	// Be spectacular on how this does not -but should- handle irrecoverables:
	fmt.Fprintf(os.Stderr, "irrecoverable error signaler not found for context, please implement! Unhandled irrecoverable error: %v\n", err)
	os.Exit(1)
}
