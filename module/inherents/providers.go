package inherents

import (
	"context"
	"fmt"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/hashicorp/go-multierror"

	"github.com/keelchain/collator-go/model/collation"
	"github.com/keelchain/collator-go/module"
)

// Providers is a per-attempt provider set: a fixed list of single-value
// providers whose outputs are merged into one inherent data bag.
type Providers []module.InherentDataProvider

var _ module.InherentDataProviders = Providers{}

// CreateInherentData queries every provider and merges the results. All
// providers are attempted even after a failure, so the returned error
// names every provider that misbehaved, not just the first.
func (p Providers) CreateInherentData(ctx context.Context) (collation.InherentData, error) {
	data := collation.NewInherentData()

	var result *multierror.Error
	for _, provider := range p {
		value, err := provider.ProvideInherentData(ctx)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("provider %s: %w", provider.InherentIdentifier(), err))
			continue
		}
		if err := data.Put(provider.InherentIdentifier(), value); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return data, nil
}

// TimestampProvider supplies the slot timestamp inherent: the current time
// in milliseconds since the unix epoch, CBOR-encoded.
type TimestampProvider struct {
	now func() time.Time
}

var _ module.InherentDataProvider = (*TimestampProvider)(nil)

func NewTimestampProvider() *TimestampProvider {
	return &TimestampProvider{now: time.Now}
}

func (p *TimestampProvider) InherentIdentifier() collation.InherentIdentifier {
	return collation.InherentTimestamp
}

func (p *TimestampProvider) ProvideInherentData(_ context.Context) ([]byte, error) {
	return cbor.Marshal(uint64(p.now().UnixMilli()))
}

// ValidationDataProvider supplies the primary-chain validation context
// inherent for the relay parent this attempt anchors to.
type ValidationDataProvider struct {
	relay collation.RelayContext
}

var _ module.InherentDataProvider = (*ValidationDataProvider)(nil)

func NewValidationDataProvider(relay collation.RelayContext) *ValidationDataProvider {
	return &ValidationDataProvider{relay: relay}
}

func (p *ValidationDataProvider) InherentIdentifier() collation.InherentIdentifier {
	return collation.InherentValidationData
}

func (p *ValidationDataProvider) ProvideInherentData(_ context.Context) ([]byte, error) {
	return cbor.Marshal(struct {
		RelayParent    collation.Identifier
		ValidationData collation.PersistedValidationData
	}{
		RelayParent:    p.relay.RelayParent,
		ValidationData: p.relay.ValidationData,
	})
}

// DefaultFactory creates the standard provider set for each attempt: the
// slot timestamp and the relay validation context. It cross-checks the
// caller-supplied relay context against the relay chain before handing out
// providers, so a candidate is never built against validation data the
// relay chain no longer persists.
type DefaultFactory struct {
	client module.RelayChainClient
}

var _ module.InherentDataProviderFactory = (*DefaultFactory)(nil)

func NewDefaultFactory(client module.RelayChainClient) *DefaultFactory {
	return &DefaultFactory{client: client}
}

func (f *DefaultFactory) CreateInherentDataProviders(ctx context.Context, _ collation.Identifier, relay collation.RelayContext) (module.InherentDataProviders, error) {
	persisted, err := f.client.PersistedValidationData(ctx, relay.RelayParent)
	if err != nil {
		return nil, fmt.Errorf("could not retrieve validation data for relay parent %x: %w", relay.RelayParent, err)
	}
	if persisted.RelayParentNumber != relay.ValidationData.RelayParentNumber {
		return nil, fmt.Errorf("validation data mismatch for relay parent %x: height %d != %d",
			relay.RelayParent, persisted.RelayParentNumber, relay.ValidationData.RelayParentNumber)
	}

	return Providers{
		NewTimestampProvider(),
		NewValidationDataProvider(relay),
	}, nil
}
