package rivgo

import (
	"github.com/hupe1980/rivgo/permutation"
)

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
	permutations     *permutation.Cache
}

// Option configures Space construction.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector sets the metrics sink. If nil is passed, metrics are
// discarded.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithPermutationCache shares permutations between spaces. Spaces with the
// same size and seed then reuse one *permutation.Permutations.
func WithPermutationCache(c *permutation.Cache) Option {
	return func(o *options) {
		o.permutations = c
	}
}
