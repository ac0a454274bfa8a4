package module

import (
	"context"

	"github.com/keelchain/collator-go/model/collation"
)

// InherentDataProviderFactory creates the set of inherent data providers
// for one authoring attempt. The factory itself is logically stateless and
// shared; each call yields fresh per-attempt providers bound to the given
// parent and relay context.
type InherentDataProviderFactory interface {
	CreateInherentDataProviders(ctx context.Context, parent collation.Identifier, relay collation.RelayContext) (InherentDataProviders, error)
}

// InherentDataProviders is a per-attempt provider set that can materialize
// the inherent data bag for the attempt it was created for.
type InherentDataProviders interface {
	CreateInherentData(ctx context.Context) (collation.InherentData, error)
}

// InherentDataProvider supplies a single keyed inherent value. Providers
// are combined into an InherentDataProviders set per attempt.
type InherentDataProvider interface {

	// InherentIdentifier returns the key this provider's value is stored
	// under.
	InherentIdentifier() collation.InherentIdentifier

	// ProvideInherentData returns the encoded inherent value.
	ProvideInherentData(ctx context.Context) ([]byte, error)
}
