package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/keelchain/collator-go/module"
)

// CollatorCollector reports the outcomes of the candidate production path.
// Since every failure in that path is silent by design, these counters are
// the only place repeated failure becomes visible.
type CollatorCollector struct {
	candidatesProduced prometheus.Counter
	collationsSkipped  *prometheus.CounterVec
	productionDuration prometheus.Histogram
	inherentDuration   prometheus.Histogram
}

var _ module.CollatorMetrics = (*CollatorCollector)(nil)

func NewCollatorCollector() *CollatorCollector {

	cc := &CollatorCollector{

		candidatesProduced: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespaceCollator,
			Name:      "candidates_produced_total",
			Help:      "count of candidates produced by this node",
		}),

		collationsSkipped: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespaceCollator,
			Name:      "collations_skipped_total",
			Help:      "count of collation rounds that produced no candidate, by reason",
		}, []string{"reason"}),

		productionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespaceCollator,
			Name:      "candidate_production_duration_ms",
			Help:      "duration of successful candidate production attempts",
			Buckets:   []float64{10, 50, 100, 250, 500, 1000},
		}),

		inherentDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespaceCollator,
			Name:      "inherent_data_assembly_duration_ms",
			Help:      "duration of successful inherent data assemblies",
			Buckets:   []float64{1, 5, 10, 50, 100, 250},
		}),
	}

	return cc
}

func (cc *CollatorCollector) CandidateProduced(duration time.Duration) {
	cc.candidatesProduced.Inc()
	cc.productionDuration.Observe(float64(duration.Milliseconds()))
}

func (cc *CollatorCollector) CollationSkipped(reason string) {
	cc.collationsSkipped.With(prometheus.Labels{"reason": reason}).Inc()
}

func (cc *CollatorCollector) InherentDataAssembled(duration time.Duration) {
	cc.inherentDuration.Observe(float64(duration.Milliseconds()))
}
