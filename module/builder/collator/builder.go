// Package collator wires the candidate production stack together at node
// startup: exactly one authoring engine, one producer and one collation
// engine per node.
package collator

import (
	"fmt"

	"github.com/rs/zerolog"

	collatoreng "github.com/keelchain/collator-go/engine/collator"
	"github.com/keelchain/collator-go/module"
	"github.com/keelchain/collator-go/module/authoring"
	"github.com/keelchain/collator-go/module/inherents"
	"github.com/keelchain/collator-go/module/production"
	"github.com/keelchain/collator-go/module/slotclock"
)

// Params bundles everything the builder needs. InherentProviders and
// Backoff are optional; all other fields are required.
type Params struct {
	Log     zerolog.Logger
	Metrics module.CollatorMetrics

	// authoring engine dependencies
	ProposerFactory module.ProposerFactory
	BlockImport     module.BlockImport
	SyncOracle      module.SyncOracle
	Backoff         module.BackoffStrategy
	Keystore        module.Keystore
	ForceAuthoring  bool

	// InherentProviders overrides the default provider factory. Leave nil
	// to use the standard timestamp + validation data providers backed by
	// the relay chain client.
	InherentProviders module.InherentDataProviderFactory

	// relay chain access, behind the type-erased handle
	RelayChain module.RelayChainHandle

	// collation loop dependencies
	ChainHead module.ChainHeadProvider
	Sink      module.CandidateSink

	// SlotOptions override the default slot duration and attempt budget.
	SlotOptions []slotclock.Option
}

// Collator is the assembled candidate production stack.
type Collator struct {
	Producer *production.Producer
	Engine   *collatoreng.Engine
}

// Build assembles the stack. The concrete relay chain client type is only
// available behind the type-erased handle, so construction crosses the
// erasure boundary once via double dispatch: the handle calls us back with
// the concrete client, inside which everything can finally be wired. This
// happens exactly once, at startup, and never on the per-slot path.
func Build(params Params) (*Collator, error) {
	consumer := &builderConsumer{params: params}

	err := params.RelayChain.ExecuteWith(consumer)
	if err != nil {
		return nil, fmt.Errorf("could not build collator: %w", err)
	}

	return consumer.collator, nil
}

// builderConsumer receives the concrete relay chain client from the
// type-erased handle and performs the actual construction.
type builderConsumer struct {
	params   Params
	collator *Collator
}

var _ module.RelayChainConsumer = (*builderConsumer)(nil)

func (b *builderConsumer) WithClient(client module.RelayChainClient) error {
	params := b.params

	providerFactory := params.InherentProviders
	if providerFactory == nil {
		providerFactory = inherents.NewDefaultFactory(client)
	}

	engine := authoring.NewSlotEngine(
		params.Log,
		params.ProposerFactory,
		params.BlockImport,
		params.SyncOracle,
		params.Keystore,
		authoring.WithForceAuthoring(params.ForceAuthoring),
		authoring.WithBackoffStrategy(params.Backoff),
	)

	handle := authoring.NewHandle(params.Log, engine)
	assembler := inherents.NewAssembler(params.Log, providerFactory, params.Metrics)
	clock := slotclock.NewCalculator(params.SlotOptions...)

	producer, err := production.NewProducer(params.Log, params.Metrics, clock, assembler, handle)
	if err != nil {
		return fmt.Errorf("could not create producer: %w", err)
	}

	b.collator = &Collator{
		Producer: producer,
		Engine:   collatoreng.New(params.Log, client, params.ChainHead, producer, params.Sink),
	}
	return nil
}
