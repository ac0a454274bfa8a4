package authoring_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/keelchain/collator-go/module/authoring"
	modulemock "github.com/keelchain/collator-go/module/mock"
	"github.com/keelchain/collator-go/utils/unittest"
)

type engineMocks struct {
	proposers *modulemock.ProposerFactory
	proposer  *modulemock.Proposer
	importer  *modulemock.BlockImport
	sync      *modulemock.SyncOracle
	backoff   *modulemock.BackoffStrategy
	keystore  *modulemock.Keystore
}

func newEngineMocks(t *testing.T) *engineMocks {
	return &engineMocks{
		proposers: modulemock.NewProposerFactory(t),
		proposer:  modulemock.NewProposer(t),
		importer:  modulemock.NewBlockImport(t),
		sync:      modulemock.NewSyncOracle(t),
		backoff:   modulemock.NewBackoffStrategy(t),
		keystore:  modulemock.NewKeystore(t),
	}
}

func (m *engineMocks) engine(opts ...authoring.SlotEngineOption) *authoring.SlotEngine {
	return authoring.NewSlotEngine(
		unittest.Logger(),
		m.proposers,
		m.importer,
		m.sync,
		m.keystore,
		opts...,
	)
}

// TestSlotEngine_HappyPath checks the full authoring flow: claim the slot,
// propose, sign, import, and return the block with its proof.
func TestSlotEngine_HappyPath(t *testing.T) {
	slot := unittest.SlotDescriptorFixture()
	block := unittest.BlockWithParentFixture(slot.ChainHead)
	proof := unittest.StorageProofFixture()
	signature := unittest.BytesFixture(64)

	m := newEngineMocks(t)
	m.sync.On("IsSyncing").Return(false).Once()
	m.keystore.On("CanAuthor", slot.Slot).Return(true).Once()
	m.proposers.On("CreateProposer", mock.Anything, slot.ChainHead).Return(m.proposer, nil).Once()
	m.proposer.On("Propose", mock.Anything, slot.InherentData, slot.Deadline).Return(block, proof, nil).Once()
	blockID := block.ID()
	m.keystore.On("Sign", blockID[:]).Return(signature, nil).Once()
	m.importer.On("ImportBlock", mock.Anything, block).Return(nil).Once()

	gotBlock, gotProof, err := m.engine().OnSlot(context.Background(), slot)
	require.NoError(t, err)
	assert.Same(t, block, gotBlock)
	assert.Equal(t, proof, gotProof)
	assert.Equal(t, signature, gotBlock.Header.AuthorSignature)
}

// TestSlotEngine_Declines enumerates the cases where the engine declines
// the slot without error and without touching the proposer.
func TestSlotEngine_Declines(t *testing.T) {

	t.Run("syncing", func(t *testing.T) {
		m := newEngineMocks(t)
		m.sync.On("IsSyncing").Return(true).Once()

		block, proof, err := m.engine().OnSlot(context.Background(), unittest.SlotDescriptorFixture())
		require.NoError(t, err)
		assert.Nil(t, block)
		assert.Nil(t, proof)
	})

	t.Run("backing off", func(t *testing.T) {
		slot := unittest.SlotDescriptorFixture()
		m := newEngineMocks(t)
		m.sync.On("IsSyncing").Return(false).Once()
		m.backoff.On("ShouldBackoff", slot.ChainHead, slot.Slot).Return(true).Once()

		block, proof, err := m.engine(authoring.WithBackoffStrategy(m.backoff)).OnSlot(context.Background(), slot)
		require.NoError(t, err)
		assert.Nil(t, block)
		assert.Nil(t, proof)
	})

	t.Run("not our turn", func(t *testing.T) {
		slot := unittest.SlotDescriptorFixture()
		m := newEngineMocks(t)
		m.sync.On("IsSyncing").Return(false).Once()
		m.keystore.On("CanAuthor", slot.Slot).Return(false).Once()

		block, proof, err := m.engine().OnSlot(context.Background(), slot)
		require.NoError(t, err)
		assert.Nil(t, block)
		assert.Nil(t, proof)
	})
}

// TestSlotEngine_ForceAuthoring checks that force authoring overrides the
// backoff strategy.
func TestSlotEngine_ForceAuthoring(t *testing.T) {
	slot := unittest.SlotDescriptorFixture()
	block := unittest.BlockWithParentFixture(slot.ChainHead)
	proof := unittest.StorageProofFixture()

	m := newEngineMocks(t)
	m.sync.On("IsSyncing").Return(false).Once()
	// the backoff strategy must never be consulted
	m.keystore.On("CanAuthor", slot.Slot).Return(true).Once()
	m.proposers.On("CreateProposer", mock.Anything, slot.ChainHead).Return(m.proposer, nil).Once()
	m.proposer.On("Propose", mock.Anything, slot.InherentData, slot.Deadline).Return(block, proof, nil).Once()
	m.keystore.On("Sign", mock.Anything).Return(unittest.BytesFixture(64), nil).Once()
	m.importer.On("ImportBlock", mock.Anything, block).Return(nil).Once()

	engine := m.engine(
		authoring.WithBackoffStrategy(m.backoff),
		authoring.WithForceAuthoring(true),
	)

	gotBlock, _, err := engine.OnSlot(context.Background(), slot)
	require.NoError(t, err)
	assert.Same(t, block, gotBlock)
	m.backoff.AssertNotCalled(t, "ShouldBackoff", mock.Anything, mock.Anything)
}

// TestSlotEngine_Failures checks that failures on the authoring path are
// returned as errors and nothing is imported afterwards.
func TestSlotEngine_Failures(t *testing.T) {

	t.Run("proposer creation fails", func(t *testing.T) {
		slot := unittest.SlotDescriptorFixture()
		m := newEngineMocks(t)
		m.sync.On("IsSyncing").Return(false).Once()
		m.keystore.On("CanAuthor", slot.Slot).Return(true).Once()
		m.proposers.On("CreateProposer", mock.Anything, slot.ChainHead).
			Return(nil, errors.New("state unavailable")).Once()

		_, _, err := m.engine().OnSlot(context.Background(), slot)
		require.Error(t, err)
		m.importer.AssertNotCalled(t, "ImportBlock", mock.Anything, mock.Anything)
	})

	t.Run("proposal fails", func(t *testing.T) {
		slot := unittest.SlotDescriptorFixture()
		m := newEngineMocks(t)
		m.sync.On("IsSyncing").Return(false).Once()
		m.keystore.On("CanAuthor", slot.Slot).Return(true).Once()
		m.proposers.On("CreateProposer", mock.Anything, slot.ChainHead).Return(m.proposer, nil).Once()
		m.proposer.On("Propose", mock.Anything, slot.InherentData, slot.Deadline).
			Return(nil, nil, errors.New("deadline exceeded")).Once()

		_, _, err := m.engine().OnSlot(context.Background(), slot)
		require.Error(t, err)
		m.importer.AssertNotCalled(t, "ImportBlock", mock.Anything, mock.Anything)
	})

	t.Run("import fails", func(t *testing.T) {
		slot := unittest.SlotDescriptorFixture()
		block := unittest.BlockWithParentFixture(slot.ChainHead)
		m := newEngineMocks(t)
		m.sync.On("IsSyncing").Return(false).Once()
		m.keystore.On("CanAuthor", slot.Slot).Return(true).Once()
		m.proposers.On("CreateProposer", mock.Anything, slot.ChainHead).Return(m.proposer, nil).Once()
		m.proposer.On("Propose", mock.Anything, slot.InherentData, slot.Deadline).
			Return(block, unittest.StorageProofFixture(), nil).Once()
		m.keystore.On("Sign", mock.Anything).Return(unittest.BytesFixture(64), nil).Once()
		m.importer.On("ImportBlock", mock.Anything, block).
			Return(errors.New("block rejected")).Once()

		_, _, err := m.engine().OnSlot(context.Background(), slot)
		require.Error(t, err)
	})
}
