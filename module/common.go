package module

import (
	"github.com/keelchain/collator-go/module/irrecoverable"
)

// ReadyDoneAware provides an easy interface to wait for module startup and
// shutdown. Modules that implement this interface only support a single
// start-stop cycle.
type ReadyDoneAware interface {
	// Ready returns a ready channel that is closed once startup has
	// completed.
	Ready() <-chan struct{}

	// Done returns a done channel that is closed once shutdown has
	// completed.
	Done() <-chan struct{}
}

// Startable provides an interface to start a component. Once started, the
// component can be stopped by cancelling the given context.
type Startable interface {
	// Start starts the component. Any irrecoverable errors thrown by the
	// component will be passed down the given SignalerContext.
	Start(ctx irrecoverable.SignalerContext)
}
