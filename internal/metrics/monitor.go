// Package metrics collects per-request performance data in memory: a
// capped ring of request records, per-endpoint statistics, usage
// analytics and an overall health snapshot for the admin endpoints.
package metrics

import (
	"runtime"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	// maxRecords caps the in-memory request ring.
	maxRecords = 10000
	// healthWindow is how many recent requests feed the health snapshot.
	healthWindow = 100
	// slowThreshold marks a request worth a warning log.
	slowThreshold = 5 * time.Second
)

// Record is one observed request.
type Record struct {
	Timestamp  time.Time
	Endpoint   string
	Method     string
	Duration   time.Duration
	StatusCode int
}

// Health is a point-in-time service health snapshot.
type Health struct {
	Timestamp       time.Time `json:"timestamp"`
	UptimeSeconds   float64   `json:"uptime_seconds"`
	Goroutines      int       `json:"goroutines"`
	RecentRequests  int       `json:"recent_requests"`
	AvgResponseMS   float64   `json:"avg_response_ms"`
	RecentErrorRate float64   `json:"recent_error_rate"`
}

// EndpointStats summarizes one endpoint over a time window.
type EndpointStats struct {
	Endpoint      string         `json:"endpoint"`
	TotalRequests int            `json:"total_requests"`
	AvgResponseMS float64        `json:"avg_response_ms"`
	MinResponseMS float64        `json:"min_response_ms"`
	MaxResponseMS float64        `json:"max_response_ms"`
	ErrorRate     float64        `json:"error_rate"`
	StatusCodes   map[string]int `json:"status_code_distribution"`
}

// Usage summarizes traffic over a time window.
type Usage struct {
	PeriodHours     int            `json:"time_period_hours"`
	TotalRequests   int            `json:"total_requests"`
	UniqueEndpoints int            `json:"unique_endpoints"`
	EndpointUsage   map[string]int `json:"endpoint_usage"`
	HourlyUsage     map[int]int    `json:"hourly_distribution"`
	ErrorSummary    map[string]int `json:"error_summary"`
	UptimeHours     float64        `json:"uptime_hours"`
}

// Monitor records requests into a bounded ring buffer. Safe for
// concurrent use.
type Monitor struct {
	mu      sync.Mutex
	records []Record
	start   int
	count   int

	started time.Time
	logger  *zap.Logger
	now     func() time.Time
}

func NewMonitor(logger *zap.Logger) *Monitor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		records: make([]Record, maxRecords),
		started: time.Now(),
		logger:  logger,
		now:     time.Now,
	}
}

// RecordRequest appends one request record, evicting the oldest when the
// ring is full.
func (m *Monitor) RecordRequest(endpoint, method string, duration time.Duration, statusCode int) {
	rec := Record{
		Timestamp:  m.now(),
		Endpoint:   endpoint,
		Method:     method,
		Duration:   duration,
		StatusCode: statusCode,
	}

	m.mu.Lock()
	idx := (m.start + m.count) % maxRecords
	m.records[idx] = rec
	if m.count < maxRecords {
		m.count++
	} else {
		m.start = (m.start + 1) % maxRecords
	}
	m.mu.Unlock()

	if duration > slowThreshold {
		m.logger.Warn("slow response",
			zap.String("endpoint", endpoint),
			zap.Duration("duration", duration))
	}
	if statusCode >= 500 {
		m.logger.Error("server error response",
			zap.String("endpoint", endpoint),
			zap.Int("status", statusCode))
	}
}

// snapshot copies the ring oldest-first.
func (m *Monitor) snapshot() []Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Record, m.count)
	for i := 0; i < m.count; i++ {
		out[i] = m.records[(m.start+i)%maxRecords]
	}
	return out
}

// Health reports a snapshot over the most recent requests.
func (m *Monitor) Health() Health {
	records := m.snapshot()
	if len(records) > healthWindow {
		records = records[len(records)-healthWindow:]
	}

	var totalMS float64
	var errored int
	for _, r := range records {
		totalMS += float64(r.Duration.Milliseconds())
		if r.StatusCode >= 400 {
			errored++
		}
	}
	health := Health{
		Timestamp:      m.now(),
		UptimeSeconds:  m.now().Sub(m.started).Seconds(),
		Goroutines:     runtime.NumGoroutine(),
		RecentRequests: len(records),
	}
	if len(records) > 0 {
		health.AvgResponseMS = totalMS / float64(len(records))
		health.RecentErrorRate = float64(errored) / float64(len(records))
	}
	return health
}

// EndpointStats summarizes one endpoint over the last window hours.
func (m *Monitor) EndpointStats(endpoint string, window time.Duration) (EndpointStats, bool) {
	cutoff := m.now().Add(-window)

	stats := EndpointStats{Endpoint: endpoint, StatusCodes: map[string]int{}}
	var totalMS float64
	var errored int
	for _, r := range m.snapshot() {
		if r.Endpoint != endpoint || !r.Timestamp.After(cutoff) {
			continue
		}
		ms := float64(r.Duration.Milliseconds())
		if stats.TotalRequests == 0 || ms < stats.MinResponseMS {
			stats.MinResponseMS = ms
		}
		if ms > stats.MaxResponseMS {
			stats.MaxResponseMS = ms
		}
		totalMS += ms
		if r.StatusCode >= 400 {
			errored++
		}
		stats.StatusCodes[statusKey(r.StatusCode)]++
		stats.TotalRequests++
	}
	if stats.TotalRequests == 0 {
		return EndpointStats{}, false
	}
	stats.AvgResponseMS = totalMS / float64(stats.TotalRequests)
	stats.ErrorRate = float64(errored) / float64(stats.TotalRequests)
	return stats, true
}

// Usage reports traffic analytics over the last hours.
func (m *Monitor) Usage(hours int) Usage {
	if hours <= 0 {
		hours = 24
	}
	cutoff := m.now().Add(-time.Duration(hours) * time.Hour)

	usage := Usage{
		PeriodHours:   hours,
		EndpointUsage: map[string]int{},
		HourlyUsage:   map[int]int{},
		ErrorSummary:  map[string]int{},
		UptimeHours:   m.now().Sub(m.started).Hours(),
	}
	for _, r := range m.snapshot() {
		if !r.Timestamp.After(cutoff) {
			continue
		}
		usage.TotalRequests++
		usage.EndpointUsage[r.Endpoint]++
		usage.HourlyUsage[r.Timestamp.Hour()]++
		if r.StatusCode >= 400 {
			usage.ErrorSummary[statusKey(r.StatusCode)+"_"+r.Endpoint]++
		}
	}
	usage.UniqueEndpoints = len(usage.EndpointUsage)
	return usage
}

func statusKey(code int) string {
	return strconv.Itoa(code)
}
