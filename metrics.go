package rivgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the
// prommetrics package provides a Prometheus implementation.
type MetricsCollector interface {
	// RecordLabel is called after each label lookup or generation.
	RecordLabel(duration time.Duration, err error)

	// RecordDocument is called after each document or context vector build.
	// tokens is the number of labels summed.
	RecordDocument(tokens int, duration time.Duration, err error)

	// RecordEncode is called after each Hilbert or Hilbilly key computation.
	RecordEncode(duration time.Duration, err error)

	// RecordPermute is called after each rotation.
	RecordPermute(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLabel(time.Duration, error)         {}
func (NoopMetricsCollector) RecordDocument(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordEncode(time.Duration, error)        {}
func (NoopMetricsCollector) RecordPermute(time.Duration, error)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LabelCount         atomic.Int64
	LabelErrors        atomic.Int64
	DocumentCount      atomic.Int64
	DocumentTokens     atomic.Int64
	DocumentErrors     atomic.Int64
	DocumentTotalNanos atomic.Int64
	EncodeCount        atomic.Int64
	EncodeErrors       atomic.Int64
	EncodeTotalNanos   atomic.Int64
	PermuteCount       atomic.Int64
	PermuteErrors      atomic.Int64
}

// RecordLabel implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLabel(_ time.Duration, err error) {
	b.LabelCount.Add(1)
	if err != nil {
		b.LabelErrors.Add(1)
	}
}

// RecordDocument implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDocument(tokens int, duration time.Duration, err error) {
	b.DocumentCount.Add(1)
	b.DocumentTokens.Add(int64(tokens))
	b.DocumentTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.DocumentErrors.Add(1)
	}
}

// RecordEncode implements MetricsCollector.
func (b *BasicMetricsCollector) RecordEncode(duration time.Duration, err error) {
	b.EncodeCount.Add(1)
	b.EncodeTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.EncodeErrors.Add(1)
	}
}

// RecordPermute implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPermute(_ time.Duration, err error) {
	b.PermuteCount.Add(1)
	if err != nil {
		b.PermuteErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LabelCount:       b.LabelCount.Load(),
		LabelErrors:      b.LabelErrors.Load(),
		DocumentCount:    b.DocumentCount.Load(),
		DocumentTokens:   b.DocumentTokens.Load(),
		DocumentErrors:   b.DocumentErrors.Load(),
		DocumentAvgNanos: avg(b.DocumentTotalNanos.Load(), b.DocumentCount.Load()),
		EncodeCount:      b.EncodeCount.Load(),
		EncodeErrors:     b.EncodeErrors.Load(),
		EncodeAvgNanos:   avg(b.EncodeTotalNanos.Load(), b.EncodeCount.Load()),
		PermuteCount:     b.PermuteCount.Load(),
		PermuteErrors:    b.PermuteErrors.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LabelCount       int64
	LabelErrors      int64
	DocumentCount    int64
	DocumentTokens   int64
	DocumentErrors   int64
	DocumentAvgNanos int64
	EncodeCount      int64
	EncodeErrors     int64
	EncodeAvgNanos   int64
	PermuteCount     int64
	PermuteErrors    int64
}
