package metrics

import (
	"time"

	"github.com/keelchain/collator-go/module"
)

type NoopCollector struct{}

var _ module.CollatorMetrics = (*NoopCollector)(nil)

func NewNoopCollector() *NoopCollector {
	nc := &NoopCollector{}
	return nc
}

func (nc *NoopCollector) CandidateProduced(duration time.Duration)     {}
func (nc *NoopCollector) CollationSkipped(reason string)               {}
func (nc *NoopCollector) InherentDataAssembled(duration time.Duration) {}
