package metrics

import (
	"sync/atomic"
	"time"
)

// Collector tracks request counters and report generation stats without
// external dependencies; Snapshot is served on the metrics endpoint.
type Collector struct {
	totalRequests   uint64
	errorRequests   uint64
	totalDurationMs uint64
	reportsBuilt    uint64
	reportRows      uint64
}

func New() *Collector {
	return &Collector{}
}

func (c *Collector) Record(status int, duration time.Duration) {
	atomic.AddUint64(&c.totalRequests, 1)
	if status >= 500 {
		atomic.AddUint64(&c.errorRequests, 1)
	}
	atomic.AddUint64(&c.totalDurationMs, uint64(duration.Milliseconds()))
}

func (c *Collector) RecordReport(rows int) {
	atomic.AddUint64(&c.reportsBuilt, 1)
	atomic.AddUint64(&c.reportRows, uint64(rows))
}

func (c *Collector) Snapshot() map[string]any {
	total := atomic.LoadUint64(&c.totalRequests)
	errs := atomic.LoadUint64(&c.errorRequests)
	totalMs := atomic.LoadUint64(&c.totalDurationMs)
	reports := atomic.LoadUint64(&c.reportsBuilt)
	rows := atomic.LoadUint64(&c.reportRows)
	avg := float64(0)
	if total > 0 {
		avg = float64(totalMs) / float64(total)
	}
	return map[string]any{
		"requestsTotal":   total,
		"errorsTotal":     errs,
		"avgDurationMs":   avg,
		"totalDurationMs": totalMs,
		"reportsBuilt":    reports,
		"reportRowsTotal": rows,
	}
}
