// Package collator implements the engine driving candidate production: it
// follows new heads of the relay chain and runs one production round per
// head, pushing any resulting candidate to the backing path.
package collator

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/keelchain/collator-go/model/collation"
	"github.com/keelchain/collator-go/module"
	"github.com/keelchain/collator-go/module/component"
	"github.com/keelchain/collator-go/module/irrecoverable"
)

// Engine subscribes to relay chain head notifications and invokes the
// candidate producer once per observed head. Production failures are
// absorbed by the producer; only the loss of the relay subscription is
// irrecoverable for this engine.
type Engine struct {
	*component.ComponentManager

	log      zerolog.Logger
	client   module.RelayChainClient
	heads    module.ChainHeadProvider
	producer module.CandidateProducer
	sink     module.CandidateSink
}

func New(
	log zerolog.Logger,
	client module.RelayChainClient,
	heads module.ChainHeadProvider,
	producer module.CandidateProducer,
	sink module.CandidateSink,
) *Engine {
	e := &Engine{
		log:      log.With().Str("engine", "collator").Logger(),
		client:   client,
		heads:    heads,
		producer: producer,
		sink:     sink,
	}

	e.ComponentManager = component.NewComponentManagerBuilder().
		AddWorker(e.processRelayHeads).
		Build()

	return e
}

// processRelayHeads is the single worker routine of the engine: subscribe,
// then run one collation round per relay head until shutdown.
func (e *Engine) processRelayHeads(ctx irrecoverable.SignalerContext, ready component.ReadyFunc) {
	heads, err := e.client.SubscribeNewHeads(ctx)
	if err != nil {
		ctx.Throw(fmt.Errorf("could not subscribe to relay chain heads: %w", err))
		return
	}

	ready()

	for {
		select {
		case <-ctx.Done():
			return
		case head, ok := <-heads:
			if !ok {
				// a dropped relay connection leaves us unable to ever
				// collate again, so escalate instead of spinning
				ctx.Throw(fmt.Errorf("relay chain head subscription closed"))
				return
			}
			e.onRelayHead(ctx, head)
		}
	}
}

func (e *Engine) onRelayHead(ctx context.Context, head collation.RelayHead) {
	log := e.log.With().
		Hex("relay_parent", head.Hash[:]).
		Uint64("relay_height", head.Number).
		Logger()

	validationData, err := e.client.PersistedValidationData(ctx, head.Hash)
	if err != nil {
		log.Error().Err(err).Msg("could not retrieve validation data, skipping relay head")
		return
	}

	parent, err := e.heads.LatestHeader(ctx)
	if err != nil {
		log.Error().Err(err).Msg("could not retrieve chain head, skipping relay head")
		return
	}

	candidate := e.producer.ProduceCandidate(ctx, parent, head.Hash, validationData)
	if candidate == nil {
		// no candidate this round; the producer has logged and counted why
		return
	}

	err = e.sink.SubmitCandidate(ctx, head.Hash, candidate)
	if err != nil {
		log.Error().Err(err).
			Hex("block_id", logID(candidate.Block.ID())).
			Msg("could not submit candidate")
		return
	}

	log.Info().
		Hex("block_id", logID(candidate.Block.ID())).
		Uint64("height", candidate.Block.Header.Height).
		Msg("submitted candidate")
}

func logID(id collation.Identifier) []byte {
	return id[:]
}
