package module

import (
	"context"
	"time"

	"github.com/keelchain/collator-go/model/collation"
)

// AuthoringEngine is the stateful capability that builds, proves and signs
// a block for one slot. It is long-lived and shared across attempts; the
// caller must guarantee that at most one OnSlot call is active at a time.
type AuthoringEngine interface {

	// OnSlot attempts to author a block for the given slot. It returns the
	// authored block together with its storage proof, or (nil, nil, nil)
	// when the engine declines the slot, for instance because it is not
	// this node's turn. The engine should resolve within the descriptor's
	// deadline; the context carries it as a cancellation signal.
	OnSlot(ctx context.Context, slot *collation.SlotDescriptor) (*collation.Block, collation.StorageProof, error)
}

// ProposerFactory creates a proposer for one authoring attempt on top of
// the given parent.
type ProposerFactory interface {
	CreateProposer(ctx context.Context, parent *collation.Header) (Proposer, error)
}

// Proposer builds one block on the parent it was created for. A proposer
// is used for a single proposal and then discarded.
type Proposer interface {

	// Propose builds a block embedding the given inherent data and returns
	// it with the storage proof of its state transition. The proposer must
	// resolve before the deadline.
	Propose(ctx context.Context, inherentData collation.InherentData, deadline time.Time) (*collation.Block, collation.StorageProof, error)
}

// BlockImport is the sink an authored block is handed to before the
// candidate leaves the authoring path.
type BlockImport interface {
	ImportBlock(ctx context.Context, block *collation.Block) error
}

// SyncOracle reports whether this node is still catching up with the
// network. Authoring while syncing would build on stale state.
type SyncOracle interface {
	IsSyncing() bool
}

// BackoffStrategy can veto authoring for a slot, typically to slow down
// block production when finality is lagging.
type BackoffStrategy interface {
	ShouldBackoff(chainHead *collation.Header, slot uint64) bool
}

// Keystore gives the authoring engine access to this node's authority key.
type Keystore interface {

	// CanAuthor returns true if this node holds the key entitled to author
	// in the given slot.
	CanAuthor(slot uint64) bool

	// Sign signs the given message with the authority key.
	Sign(msg []byte) ([]byte, error)
}
