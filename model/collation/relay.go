package collation

// PersistedValidationData is the validation context the primary chain
// persists for a secondary chain at a given relay block. A candidate built
// against a relay parent must embed the matching validation data, otherwise
// the primary chain rejects it.
type PersistedValidationData struct {
	// ParentHead is the encoded head of the secondary chain as the primary
	// chain last saw it.
	ParentHead []byte

	// RelayParentNumber is the block number of the relay parent.
	RelayParentNumber uint64

	// RelayParentStorageRoot is the state root of the relay parent.
	RelayParentStorageRoot Identifier

	// MaxPOVSize bounds the size of the proof a candidate may carry.
	MaxPOVSize uint32
}

// RelayContext anchors one authoring attempt to the primary chain: the
// relay block to build against and its persisted validation data. It is
// supplied by the caller per attempt and read-only thereafter.
type RelayContext struct {
	RelayParent    Identifier
	ValidationData PersistedValidationData
}

// RelayHead is a new-head notification from the primary chain.
type RelayHead struct {
	Hash   Identifier
	Number uint64
}
