package collation

// Block includes the header and the full payload contents.
type Block struct {
	Header  *Header
	Payload *Payload
}

// SetPayload sets the payload and updates the payload hash.
func (b *Block) SetPayload(payload Payload) {
	b.Payload = &payload
	b.Header.PayloadHash = b.Payload.Hash()
}

// Valid will check whether the block is valid bottom-up.
func (b Block) Valid() bool {
	return b.Header.PayloadHash == b.Payload.Hash()
}

// ID returns the ID of the header.
func (b Block) ID() Identifier {
	return b.Header.ID()
}

// Payload is the content of a block on the secondary chain: the opaque
// extrinsics the state transition executes, in order.
type Payload struct {
	Extrinsics [][]byte
}

// EmptyPayload returns a payload without any extrinsics.
func EmptyPayload() Payload {
	return Payload{}
}

// Hash returns the canonical hash of the payload.
func (p Payload) Hash() Identifier {
	return MakeID(p)
}

// StorageProof is the witness of the state transition a block enacts: the
// set of trie nodes read while executing it. It accompanies a candidate so
// the primary chain can re-execute the block without the full state.
type StorageProof [][]byte

// Candidate pairs a produced block with the proof of its state transition.
// It is handed to the backing path for submission to the primary chain.
type Candidate struct {
	Block *Block
	Proof StorageProof
}
