package collation

import (
	"time"
)

// Header contains all meta-data of a block on the secondary chain, without
// the payload contents.
type Header struct {
	// ChainID is a chain-specific value to prevent replay attacks across
	// networks.
	ChainID string

	// ParentID is the ID of this block's parent on the secondary chain.
	ParentID Identifier

	// Height is the number of the parent chain, plus one.
	Height uint64

	// PayloadHash commits to the block payload.
	PayloadHash Identifier

	// Timestamp is the time at which this block was proposed.
	Timestamp time.Time

	// AuthorSignature is the slot author's signature over the header body.
	// It is attached after proposing and is NOT part of the header ID.
	AuthorSignature []byte
}

// Body returns the immutable part of the header: everything the author
// signs and everything the ID commits to.
func (h Header) Body() interface{} {
	return struct {
		ChainID     string
		ParentID    Identifier
		Height      uint64
		PayloadHash Identifier
		Timestamp   uint64
	}{
		ChainID:     h.ChainID,
		ParentID:    h.ParentID,
		Height:      h.Height,
		PayloadHash: h.PayloadHash,
		Timestamp:   uint64(h.Timestamp.UnixMilli()),
	}
}

// ID returns a unique ID to singularly identify the header and its block.
func (h Header) ID() Identifier {
	return MakeID(h.Body())
}
