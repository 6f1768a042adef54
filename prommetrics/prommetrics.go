// Package prommetrics exports rivgo metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	space, _ := rivgo.New(cfg, rivgo.WithMetricsCollector(prommetrics.NewCollector(reg)))
package prommetrics

import (
	"time"

	"github.com/hupe1980/rivgo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "rivgo"

var durationBuckets = []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1}

// Collector implements rivgo.MetricsCollector with Prometheus counters and
// histograms.
type Collector struct {
	labels           *prometheus.CounterVec
	documents        *prometheus.CounterVec
	documentTokens   prometheus.Counter
	documentDuration prometheus.Histogram
	encodes          *prometheus.CounterVec
	encodeDuration   prometheus.Histogram
	permutes         *prometheus.CounterVec
}

var _ rivgo.MetricsCollector = (*Collector)(nil)

type options struct {
	namespace string
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace replaces DefaultNamespace.
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// NewCollector creates the metrics and registers them with reg.
// A nil reg creates unregistered metrics.
func NewCollector(reg prometheus.Registerer, optFns ...Option) *Collector {
	o := options{namespace: DefaultNamespace}
	for _, fn := range optFns {
		fn(&o)
	}

	f := promauto.With(reg)
	return &Collector{
		labels: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "labels_total",
			Help:      "Number of label lookups, by result.",
		}, []string{"result"}),
		documents: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "documents_total",
			Help:      "Number of document and context vectors built, by result.",
		}, []string{"result"}),
		documentTokens: f.NewCounter(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "document_tokens_total",
			Help:      "Number of labels summed into document and context vectors.",
		}),
		documentDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "document_duration_seconds",
			Help:      "Time spent building document and context vectors.",
			Buckets:   durationBuckets,
		}),
		encodes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "encodes_total",
			Help:      "Number of Hilbert and Hilbilly key computations, by result.",
		}, []string{"result"}),
		encodeDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "encode_duration_seconds",
			Help:      "Time spent computing keys.",
			Buckets:   durationBuckets,
		}),
		permutes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "permutes_total",
			Help:      "Number of vector rotations, by result.",
		}, []string{"result"}),
	}
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// RecordLabel implements rivgo.MetricsCollector.
func (c *Collector) RecordLabel(_ time.Duration, err error) {
	c.labels.WithLabelValues(result(err)).Inc()
}

// RecordDocument implements rivgo.MetricsCollector.
func (c *Collector) RecordDocument(tokens int, duration time.Duration, err error) {
	c.documents.WithLabelValues(result(err)).Inc()
	c.documentTokens.Add(float64(tokens))
	c.documentDuration.Observe(duration.Seconds())
}

// RecordEncode implements rivgo.MetricsCollector.
func (c *Collector) RecordEncode(duration time.Duration, err error) {
	c.encodes.WithLabelValues(result(err)).Inc()
	c.encodeDuration.Observe(duration.Seconds())
}

// RecordPermute implements rivgo.MetricsCollector.
func (c *Collector) RecordPermute(_ time.Duration, err error) {
	c.permutes.WithLabelValues(result(err)).Inc()
}
