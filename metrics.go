package bsa

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSet is called after each set operation.
	// duration is the total time taken, err is nil if successful.
	RecordSet(duration time.Duration, err error)

	// RecordDelete is called after each delete operation.
	RecordDelete(duration time.Duration, err error)

	// RecordRowAlloc is called when a row buffer is allocated.
	RecordRowAlloc(row int)

	// RecordRowRelease is called when a row buffer is released.
	RecordRowRelease(row int)

	// RecordRescan is called after deleting the max index.
	// steps is the distance between the old and the new max index.
	RecordRescan(steps int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSet(time.Duration, error)    {}
func (NoopMetricsCollector) RecordDelete(time.Duration, error) {}
func (NoopMetricsCollector) RecordRowAlloc(int)                {}
func (NoopMetricsCollector) RecordRowRelease(int)              {}
func (NoopMetricsCollector) RecordRescan(int)                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SetCount      atomic.Int64
	SetErrors     atomic.Int64
	SetTotalNanos atomic.Int64
	DeleteCount   atomic.Int64
	DeleteErrors  atomic.Int64
	RowAllocs     atomic.Int64
	RowReleases   atomic.Int64
	RescanCount   atomic.Int64
	RescanSteps   atomic.Int64
}

// RecordSet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSet(duration time.Duration, err error) {
	b.SetCount.Add(1)
	b.SetTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SetErrors.Add(1)
	}
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete(duration time.Duration, err error) {
	b.DeleteCount.Add(1)
	if err != nil {
		b.DeleteErrors.Add(1)
	}
}

// RecordRowAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRowAlloc(int) {
	b.RowAllocs.Add(1)
}

// RecordRowRelease implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRowRelease(int) {
	b.RowReleases.Add(1)
}

// RecordRescan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRescan(steps int) {
	b.RescanCount.Add(1)
	b.RescanSteps.Add(int64(steps))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SetCount:     b.SetCount.Load(),
		SetErrors:    b.SetErrors.Load(),
		SetAvgNanos:  b.getAvgSetNanos(),
		DeleteCount:  b.DeleteCount.Load(),
		DeleteErrors: b.DeleteErrors.Load(),
		RowAllocs:    b.RowAllocs.Load(),
		RowReleases:  b.RowReleases.Load(),
		LiveRows:     b.RowAllocs.Load() - b.RowReleases.Load(),
		RescanCount:  b.RescanCount.Load(),
		RescanSteps:  b.RescanSteps.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSetNanos() int64 {
	count := b.SetCount.Load()
	if count == 0 {
		return 0
	}
	return b.SetTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SetCount     int64
	SetErrors    int64
	SetAvgNanos  int64
	DeleteCount  int64
	DeleteErrors int64
	RowAllocs    int64
	RowReleases  int64
	LiveRows     int64
	RescanCount  int64
	RescanSteps  int64
}
