package authoring

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/keelchain/collator-go/model/collation"
	"github.com/keelchain/collator-go/module"
)

// SlotEngine is the default authoring engine: it claims slots round-robin
// against the authority set held by the keystore, proposes a block through
// the injected proposer factory, signs it and hands it to the block import
// sink. Block building itself, state execution and import semantics remain
// the injected capabilities' concern.
//
// The engine is NOT safe for concurrent use; callers go through a Handle.
type SlotEngine struct {
	log       zerolog.Logger
	proposers module.ProposerFactory
	importer  module.BlockImport
	sync      module.SyncOracle
	backoff   module.BackoffStrategy // optional, may be nil
	keystore  module.Keystore
	force     bool
}

var _ module.AuthoringEngine = (*SlotEngine)(nil)

type SlotEngineOption func(*SlotEngine)

// WithForceAuthoring makes the engine author even when the backoff
// strategy vetoes the slot. Used for single-node development chains.
func WithForceAuthoring(force bool) SlotEngineOption {
	return func(e *SlotEngine) {
		e.force = force
	}
}

// WithBackoffStrategy sets the strategy consulted before claiming a slot.
// Without one, the engine never backs off.
func WithBackoffStrategy(backoff module.BackoffStrategy) SlotEngineOption {
	return func(e *SlotEngine) {
		e.backoff = backoff
	}
}

func NewSlotEngine(
	log zerolog.Logger,
	proposers module.ProposerFactory,
	importer module.BlockImport,
	sync module.SyncOracle,
	keystore module.Keystore,
	opts ...SlotEngineOption,
) *SlotEngine {
	e := &SlotEngine{
		log:       log.With().Str("component", "slot_engine").Logger(),
		proposers: proposers,
		importer:  importer,
		sync:      sync,
		keystore:  keystore,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// OnSlot runs one authoring attempt. It declines (nil, nil, nil) when the
// node is syncing, when the backoff strategy vetoes the slot, or when the
// keystore holds no authority key for it. Otherwise it proposes, signs and
// imports a block, returning it with its storage proof.
func (e *SlotEngine) OnSlot(ctx context.Context, slot *collation.SlotDescriptor) (*collation.Block, collation.StorageProof, error) {
	log := e.log.With().
		Uint64("slot", slot.Slot).
		Hex("parent_id", logID(slot.ChainHead.ID())).
		Logger()

	if e.sync.IsSyncing() {
		log.Debug().Msg("skipping slot, node is syncing")
		return nil, nil, nil
	}

	if !e.force && e.backoff != nil && e.backoff.ShouldBackoff(slot.ChainHead, slot.Slot) {
		log.Debug().Msg("skipping slot, backing off")
		return nil, nil, nil
	}

	if !e.keystore.CanAuthor(slot.Slot) {
		log.Debug().Msg("skipping slot, not our turn")
		return nil, nil, nil
	}

	proposer, err := e.proposers.CreateProposer(ctx, slot.ChainHead)
	if err != nil {
		return nil, nil, fmt.Errorf("could not create proposer: %w", err)
	}

	block, proof, err := proposer.Propose(ctx, slot.InherentData, slot.Deadline)
	if err != nil {
		return nil, nil, fmt.Errorf("could not propose block: %w", err)
	}

	blockID := block.ID()
	sig, err := e.keystore.Sign(blockID[:])
	if err != nil {
		return nil, nil, fmt.Errorf("could not sign block: %w", err)
	}
	block.Header.AuthorSignature = sig

	err = e.importer.ImportBlock(ctx, block)
	if err != nil {
		return nil, nil, fmt.Errorf("could not import block: %w", err)
	}

	log.Info().
		Hex("block_id", logID(blockID)).
		Uint64("height", block.Header.Height).
		Msg("authored block for slot")

	return block, proof, nil
}

func logID(id collation.Identifier) []byte {
	return id[:]
}
