package unittest

import (
	"math/rand"
	"time"

	"github.com/keelchain/collator-go/model/collation"
)

func IdentifierFixture() collation.Identifier {
	var id collation.Identifier
	_, _ = rand.Read(id[:])
	return id
}

func BytesFixture(n int) []byte {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return b
}

func HeaderFixture(opts ...func(*collation.Header)) *collation.Header {
	header := &collation.Header{
		ChainID:     "test-chain",
		ParentID:    IdentifierFixture(),
		Height:      1 + uint64(rand.Intn(10000)),
		PayloadHash: IdentifierFixture(),
		Timestamp:   time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(header)
	}
	return header
}

func HeaderWithHeight(height uint64) func(*collation.Header) {
	return func(header *collation.Header) {
		header.Height = height
	}
}

func PayloadFixture() collation.Payload {
	return collation.Payload{
		Extrinsics: [][]byte{BytesFixture(32), BytesFixture(64)},
	}
}

func BlockFixture() *collation.Block {
	return BlockWithParentFixture(HeaderFixture())
}

func BlockWithParentFixture(parent *collation.Header) *collation.Block {
	payload := PayloadFixture()
	header := HeaderFixture(func(header *collation.Header) {
		header.ChainID = parent.ChainID
		header.ParentID = parent.ID()
		header.Height = parent.Height + 1
	})
	block := &collation.Block{
		Header:  header,
		Payload: &payload,
	}
	block.SetPayload(payload)
	return block
}

func StorageProofFixture() collation.StorageProof {
	return collation.StorageProof{BytesFixture(128), BytesFixture(128)}
}

func CandidateFixture() *collation.Candidate {
	return &collation.Candidate{
		Block: BlockFixture(),
		Proof: StorageProofFixture(),
	}
}

func ValidationDataFixture(opts ...func(*collation.PersistedValidationData)) *collation.PersistedValidationData {
	data := &collation.PersistedValidationData{
		ParentHead:             BytesFixture(32),
		RelayParentNumber:      uint64(rand.Intn(1000000)),
		RelayParentStorageRoot: IdentifierFixture(),
		MaxPOVSize:             5 * 1024 * 1024,
	}
	for _, opt := range opts {
		opt(data)
	}
	return data
}

func RelayContextFixture() collation.RelayContext {
	return collation.RelayContext{
		RelayParent:    IdentifierFixture(),
		ValidationData: *ValidationDataFixture(),
	}
}

func RelayHeadFixture() collation.RelayHead {
	return collation.RelayHead{
		Hash:   IdentifierFixture(),
		Number: uint64(rand.Intn(1000000)),
	}
}

func InherentDataFixture() collation.InherentData {
	data := collation.NewInherentData()
	_ = data.Put(collation.InherentTimestamp, BytesFixture(8))
	_ = data.Put(collation.InherentValidationData, BytesFixture(64))
	return data
}

func SlotDescriptorFixture(opts ...func(*collation.SlotDescriptor)) *collation.SlotDescriptor {
	now := time.Now().UTC()
	descriptor := &collation.SlotDescriptor{
		Slot:         uint64(rand.Intn(1000000)),
		Duration:     12 * time.Second,
		InherentData: InherentDataFixture(),
		ChainHead:    HeaderFixture(),
		Timestamp:    now,
		Deadline:     now.Add(500 * time.Millisecond),
	}
	for _, opt := range opts {
		opt(descriptor)
	}
	return descriptor
}
