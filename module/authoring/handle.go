// Package authoring contains the exclusive-access handle around the
// authoring engine and the default slot-claiming engine behind it.
package authoring

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/keelchain/collator-go/model/collation"
	"github.com/keelchain/collator-go/module"
)

// Handle owns the shared authoring engine and serializes all access to it.
// The engine is long-lived and stateful; the handle guarantees that at most
// one attempt is active inside it at any time, under any interleaving of
// callers. Everything else is transparent passthrough.
type Handle struct {
	log    zerolog.Logger
	engine module.AuthoringEngine

	// gate is a one-slot semaphore rather than a sync.Mutex so that a
	// caller waiting for the engine can still be cancelled.
	gate chan struct{}
}

func NewHandle(log zerolog.Logger, engine module.AuthoringEngine) *Handle {
	return &Handle{
		log:    log.With().Str("component", "authoring_handle").Logger(),
		engine: engine,
		gate:   make(chan struct{}, 1),
	}
}

// Attempt acquires the exclusive right to the engine, runs one authoring
// attempt for the descriptor and releases the right when it resolves. It
// suspends while another attempt holds the engine; if the context expires
// first, the attempt is abandoned without ever reaching the engine.
func (h *Handle) Attempt(ctx context.Context, slot *collation.SlotDescriptor) (*collation.Block, collation.StorageProof, error) {
	select {
	case h.gate <- struct{}{}:
	case <-ctx.Done():
		h.log.Debug().Uint64("slot", slot.Slot).Msg("context expired waiting for authoring engine")
		return nil, nil, ctx.Err()
	}
	defer func() {
		<-h.gate
	}()

	return h.engine.OnSlot(ctx, slot)
}
