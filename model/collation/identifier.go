package collation

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Identifier represents a 32-byte unique identifier for a chain entity,
// computed as the hash of its canonical encoding.
type Identifier [32]byte

// ZeroID is the lowest value in the 32-byte ID space.
var ZeroID = Identifier{}

// canonical CBOR mode used for hashing; deterministic map ordering so that
// identifiers are stable across processes.
var canonical cbor.EncMode

func init() {
	var err error
	canonical, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("could not initialize canonical encoder: %s", err))
	}
}

func (id Identifier) String() string {
	return hex.EncodeToString(id[:])
}

// HexStringToIdentifier converts a hex string to an identifier. The input
// must be 64 characters long and contain only valid hex characters.
func HexStringToIdentifier(hexString string) (Identifier, error) {
	var id Identifier
	n, err := hex.Decode(id[:], []byte(hexString))
	if err != nil {
		return id, err
	}
	if n != 32 {
		return id, fmt.Errorf("malformed input, expected 32 bytes (64 characters), decoded %d", n)
	}
	return id, nil
}

// HashToID returns the identifier of an arbitrary byte slice.
func HashToID(data []byte) Identifier {
	return sha256.Sum256(data)
}

// MakeID creates an ID from the canonical encoding of the given entity.
func MakeID(entity interface{}) Identifier {
	data, err := canonical.Marshal(entity)
	if err != nil {
		panic(fmt.Sprintf("could not encode entity: %s", err))
	}
	return HashToID(data)
}
