package collator_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/keelchain/collator-go/module"
	collatorbuilder "github.com/keelchain/collator-go/module/builder/collator"
	"github.com/keelchain/collator-go/module/metrics"
	modulemock "github.com/keelchain/collator-go/module/mock"
	"github.com/keelchain/collator-go/utils/unittest"
)

// clientHandle is a minimal type-erased handle: it knows the concrete
// client and hands it to whoever asks, counting the dispatches.
type clientHandle struct {
	client     module.RelayChainClient
	dispatches int
}

func (h *clientHandle) ExecuteWith(consumer module.RelayChainConsumer) error {
	h.dispatches++
	return consumer.WithClient(h.client)
}

func buildParams(t *testing.T, handle module.RelayChainHandle) collatorbuilder.Params {
	return collatorbuilder.Params{
		Log:             unittest.Logger(),
		Metrics:         metrics.NewNoopCollector(),
		ProposerFactory: modulemock.NewProposerFactory(t),
		BlockImport:     modulemock.NewBlockImport(t),
		SyncOracle:      modulemock.NewSyncOracle(t),
		Keystore:        modulemock.NewKeystore(t),
		RelayChain:      handle,
		ChainHead:       modulemock.NewChainHeadProvider(t),
		Sink:            modulemock.NewCandidateSink(t),
	}
}

// TestBuild checks that construction crosses the type-erasure boundary
// exactly once and yields a complete stack.
func TestBuild(t *testing.T) {
	handle := &clientHandle{client: modulemock.NewRelayChainClient(t)}

	collator, err := collatorbuilder.Build(buildParams(t, handle))
	require.NoError(t, err)

	assert.Equal(t, 1, handle.dispatches)
	assert.NotNil(t, collator.Producer)
	assert.NotNil(t, collator.Engine)
}

// failingHandle models a relay connection that cannot produce a client.
type failingHandle struct{}

func (failingHandle) ExecuteWith(module.RelayChainConsumer) error {
	return errors.New("relay node unreachable")
}

// TestBuild_HandleFailure checks that a handle that cannot produce a
// client fails construction.
func TestBuild_HandleFailure(t *testing.T) {
	_, err := collatorbuilder.Build(buildParams(t, failingHandle{}))
	require.Error(t, err)
}

// TestBuild_ProducerWorks checks that the producer coming out of the
// builder actually runs a production round, using the default inherent
// provider factory backed by the concrete client.
func TestBuild_ProducerWorks(t *testing.T) {
	parent := unittest.HeaderFixture()
	relayParent := unittest.IdentifierFixture()
	validationData := unittest.ValidationDataFixture()

	client := modulemock.NewRelayChainClient(t)
	client.On("PersistedValidationData", mock.Anything, relayParent).Return(validationData, nil).Once()

	params := buildParams(t, &clientHandle{client: client})

	// decline the slot after inherent assembly so no proposer is needed
	syncOracle := modulemock.NewSyncOracle(t)
	syncOracle.On("IsSyncing").Return(true).Once()
	params.SyncOracle = syncOracle

	collator, err := collatorbuilder.Build(params)
	require.NoError(t, err)

	candidate := collator.Producer.ProduceCandidate(context.Background(), parent, relayParent, validationData)
	assert.Nil(t, candidate)
}
