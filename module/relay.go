package module

import (
	"context"

	"github.com/keelchain/collator-go/model/collation"
)

// RelayChainClient gives access to the primary ("relay") chain this node's
// secondary chain anchors to. It is the source of the environmental facts
// an authoring attempt embeds, never a write path.
type RelayChainClient interface {

	// SubscribeNewHeads subscribes to new-head notifications of the relay
	// chain. The returned channel is closed when the subscription ends,
	// either because the context was cancelled or the connection dropped.
	SubscribeNewHeads(ctx context.Context) (<-chan collation.RelayHead, error)

	// PersistedValidationData returns the validation context the relay
	// chain persists for our secondary chain at the given relay block.
	PersistedValidationData(ctx context.Context, relayParent collation.Identifier) (*collation.PersistedValidationData, error)
}

// RelayChainHandle is a type-erased handle on a relay chain client. The
// concrete client type is only known to whoever constructed the handle;
// consumers cross the erasure boundary once, at startup, via ExecuteWith.
type RelayChainHandle interface {

	// ExecuteWith invokes the consumer with the concrete client. It is a
	// one-time double dispatch for construction and has no place on the
	// per-slot path.
	ExecuteWith(consumer RelayChainConsumer) error
}

// RelayChainConsumer receives the concrete relay chain client from a
// RelayChainHandle.
type RelayChainConsumer interface {
	WithClient(client RelayChainClient) error
}
