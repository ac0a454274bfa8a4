// Package production implements the candidate production orchestrator: one
// public operation that turns an observed relay chain event into at most
// one block candidate.
package production

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/rs/zerolog"

	"github.com/keelchain/collator-go/model/collation"
	"github.com/keelchain/collator-go/module"
	"github.com/keelchain/collator-go/module/authoring"
	"github.com/keelchain/collator-go/module/inherents"
	"github.com/keelchain/collator-go/module/metrics"
	"github.com/keelchain/collator-go/module/slotclock"
)

// relayParentCacheSize bounds the dedup cache of relay parents we have
// already collated against. Relay heads are only ever re-announced within
// a short horizon, so a small cache suffices.
const relayParentCacheSize = 64

// Producer composes the slot clock, the inherent data assembler and the
// authoring handle behind ProduceCandidate. It is safe for concurrent use;
// overlapping invocations serialize at the authoring handle.
type Producer struct {
	log       zerolog.Logger
	metrics   module.CollatorMetrics
	clock     *slotclock.Calculator
	assembler *inherents.Assembler
	handle    *authoring.Handle

	// relay parents we already produced a candidate for; a re-announced
	// relay head must not trigger a duplicate authoring attempt
	collated *lru.Cache

	now func() time.Time
}

var _ module.CandidateProducer = (*Producer)(nil)

func NewProducer(
	log zerolog.Logger,
	metrics module.CollatorMetrics,
	clock *slotclock.Calculator,
	assembler *inherents.Assembler,
	handle *authoring.Handle,
) (*Producer, error) {
	collated, err := lru.New(relayParentCacheSize)
	if err != nil {
		return nil, fmt.Errorf("could not initialize relay parent cache: %w", err)
	}

	p := &Producer{
		log:       log.With().Str("component", "candidate_producer").Logger(),
		metrics:   metrics,
		clock:     clock,
		assembler: assembler,
		handle:    handle,
		collated:  collated,
		now:       time.Now,
	}
	return p, nil
}

// ProduceCandidate attempts to author one candidate on top of parent,
// anchored to the given relay parent. It returns nil whenever no candidate
// could be produced: the inherent data was unavailable, the engine
// declined or failed, or we already collated for this relay parent. None
// of these failures propagates; the caller simply retries on the next
// relay event.
func (p *Producer) ProduceCandidate(
	ctx context.Context,
	parent *collation.Header,
	relayParent collation.Identifier,
	validationData *collation.PersistedValidationData,
) *collation.Candidate {

	log := p.log.With().
		Hex("relay_parent", relayParent[:]).
		Uint64("parent_height", parent.Height).
		Logger()

	if p.collated.Contains(relayParent) {
		log.Debug().Msg("already collated for this relay parent, skipping")
		p.metrics.CollationSkipped(metrics.SkipReasonDuplicateAttempt)
		return nil
	}

	now := p.now()
	window := p.clock.Window(now)

	relay := collation.RelayContext{
		RelayParent:    relayParent,
		ValidationData: *validationData,
	}

	inherentData := p.assembler.Assemble(ctx, parent.ID(), relay)
	if inherentData == nil {
		p.metrics.CollationSkipped(metrics.SkipReasonInherentData)
		return nil
	}

	slot := &collation.SlotDescriptor{
		Slot:         window.Slot,
		Duration:     p.clock.SlotDuration(),
		InherentData: inherentData,
		ChainHead:    parent,
		Timestamp:    now,
		Deadline:     window.Deadline,
	}

	// the deadline doubles as the cancellation signal for the attempt,
	// including the wait for the authoring engine to become free
	attemptCtx, cancel := context.WithDeadline(ctx, window.Deadline)
	defer cancel()

	block, proof, err := p.handle.Attempt(attemptCtx, slot)
	if err != nil {
		log.Debug().Err(err).Uint64("slot", window.Slot).Msg("authoring attempt failed")
		p.metrics.CollationSkipped(metrics.SkipReasonAuthoringFailed)
		return nil
	}
	if block == nil {
		log.Debug().Uint64("slot", window.Slot).Msg("authoring engine declined slot")
		p.metrics.CollationSkipped(metrics.SkipReasonEngineDeclined)
		return nil
	}

	p.collated.Add(relayParent, struct{}{})
	p.metrics.CandidateProduced(time.Since(now))

	return &collation.Candidate{
		Block: block,
		Proof: proof,
	}
}
