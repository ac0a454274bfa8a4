// Package inherents assembles the slot-scoped inherent data an authored
// block must embed, and provides the default providers for it.
package inherents

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/keelchain/collator-go/model/collation"
	"github.com/keelchain/collator-go/module"
)

// Assembler materializes the inherent data bag for one authoring attempt
// through a pluggable provider factory. Any failure is absorbed here: a
// transient environmental-data outage must degrade to "skip this round",
// never crash the authoring loop.
type Assembler struct {
	log     zerolog.Logger
	factory module.InherentDataProviderFactory
	metrics module.CollatorMetrics
}

func NewAssembler(log zerolog.Logger, factory module.InherentDataProviderFactory, metrics module.CollatorMetrics) *Assembler {
	return &Assembler{
		log:     log.With().Str("component", "inherent_assembler").Logger(),
		factory: factory,
		metrics: metrics,
	}
}

// Assemble creates the per-attempt provider set and materializes the
// inherent data bag for the given parent and relay context. It returns nil
// when either phase fails; the cause is logged here and not propagated.
func (a *Assembler) Assemble(ctx context.Context, parent collation.Identifier, relay collation.RelayContext) collation.InherentData {
	start := time.Now()

	providers, err := a.factory.CreateInherentDataProviders(ctx, parent, relay)
	if err != nil {
		a.log.Error().Err(err).
			Hex("parent", parent[:]).
			Hex("relay_parent", relay.RelayParent[:]).
			Msg("could not create inherent data providers")
		return nil
	}

	data, err := providers.CreateInherentData(ctx)
	if err != nil {
		a.log.Error().Err(err).
			Hex("parent", parent[:]).
			Hex("relay_parent", relay.RelayParent[:]).
			Msg("could not create inherent data")
		return nil
	}

	a.metrics.InherentDataAssembled(time.Since(start))

	return data
}
