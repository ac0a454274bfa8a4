package collation

import (
	"errors"
	"fmt"
)

// ErrDuplicateInherent is returned when inserting a value under an inherent
// identifier that is already present in the bag.
var ErrDuplicateInherent = errors.New("duplicate inherent identifier")

// InherentIdentifier is the 8-byte key under which one inherent value is
// stored in a block.
type InherentIdentifier [8]byte

// Well-known inherent identifiers. The byte values match what the secondary
// chain's runtime expects to find in a block.
var (
	// InherentTimestamp keys the slot timestamp, in milliseconds since the
	// unix epoch.
	InherentTimestamp = InherentIdentifier{'t', 'i', 'm', 's', 't', 'a', 'p', '0'}

	// InherentValidationData keys the primary-chain validation context the
	// block anchors to.
	InherentValidationData = InherentIdentifier{'s', 'y', 's', 'i', '1', '3', '3', '7'}
)

func (id InherentIdentifier) String() string {
	return string(id[:])
}

// InherentData is the bag of environment-derived facts a block must embed
// outside its regular extrinsics. Values are opaque encoded blobs keyed by
// inherent identifier; keys are unique and insertion order is irrelevant.
type InherentData map[InherentIdentifier][]byte

// NewInherentData returns an empty inherent data bag.
func NewInherentData() InherentData {
	return make(InherentData)
}

// Put inserts the value under the given identifier. It returns
// ErrDuplicateInherent if the identifier is already taken.
func (d InherentData) Put(id InherentIdentifier, value []byte) error {
	if _, ok := d[id]; ok {
		return fmt.Errorf("could not insert inherent %s: %w", id, ErrDuplicateInherent)
	}
	d[id] = value
	return nil
}

// Get returns the value stored under the given identifier.
func (d InherentData) Get(id InherentIdentifier) ([]byte, bool) {
	value, ok := d[id]
	return value, ok
}

// Merge moves all entries of other into d. It returns ErrDuplicateInherent
// if any identifier is present in both bags.
func (d InherentData) Merge(other InherentData) error {
	for id, value := range other {
		if err := d.Put(id, value); err != nil {
			return err
		}
	}
	return nil
}
