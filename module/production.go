package module

import (
	"context"
	"time"

	"github.com/keelchain/collator-go/model/collation"
)

// CandidateProducer produces block candidates for the secondary chain, one
// attempt per observed relay chain event.
type CandidateProducer interface {

	// ProduceCandidate attempts to author one candidate on top of parent,
	// anchored to the given relay parent and its validation data. It
	// returns nil whenever no candidate could be produced this round; the
	// caller is expected to simply retry on the next event. Concurrent
	// invocations are tolerated and serialized at the authoring engine.
	ProduceCandidate(ctx context.Context, parent *collation.Header, relayParent collation.Identifier, validationData *collation.PersistedValidationData) *collation.Candidate
}

// CandidateSink accepts produced candidates for submission to the backing
// path of the primary chain.
type CandidateSink interface {
	SubmitCandidate(ctx context.Context, relayParent collation.Identifier, candidate *collation.Candidate) error
}

// ChainHeadProvider reports the secondary chain's current head, the header
// the next candidate is built on.
type ChainHeadProvider interface {
	LatestHeader(ctx context.Context) (*collation.Header, error)
}

// CollatorMetrics reports the production outcomes of the collation path.
// Failures in this path are silent by design; these metrics are how
// operators observe them.
type CollatorMetrics interface {

	// CandidateProduced reports one successfully produced candidate and
	// the wall-clock duration of the attempt.
	CandidateProduced(duration time.Duration)

	// CollationSkipped reports a round that produced no candidate, with
	// the reason it was skipped.
	CollationSkipped(reason string)

	// InherentDataAssembled reports the duration of one successful
	// inherent data assembly.
	InherentDataAssembled(duration time.Duration)
}
