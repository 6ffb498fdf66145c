package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// HTTP
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockgen_http_requests_total",
			Help: "Total number of HTTP requests processed",
		},
		[]string{"method", "path"},
	)
	HTTPDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mockgen_http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	HTTPErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockgen_http_errors_total",
			Help: "Total number of HTTP request errors",
		},
		[]string{"method", "path", "status"},
	)

	// Generations
	SpecsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mockgen_specs_generated_total",
			Help: "Total number of mock API specs successfully generated",
		},
	)
	GenerationDurationSeconds = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mockgen_generation_duration_seconds",
			Help:    "Histogram of end-to-end generation durations in seconds",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8), // 0.25s..32s
		},
	)

	// LLM
	LLMRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockgen_llm_requests_total",
			Help: "Number of completion requests by model",
		},
		[]string{"model"},
	)

	// Recovery
	RecoveryOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockgen_recovery_outcomes_total",
			Help: "Recovery attempts by winning strategy",
		},
		[]string{"strategy"}, // strategy: fenced_block|brace_span|direct|salvage|failed
	)

	// Inbound rate limiting
	RateLimited = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "mockgen_rate_limited_total",
			Help: "Inbound requests rejected by the fixed-window limiter",
		},
	)

	// Errors
	Errors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mockgen_errors_total",
			Help: "Errors encountered in components",
		},
		[]string{"component", "type"},
	)
)

func init() {
	prometheus.MustRegister(
		// HTTP
		HTTPRequests,
		HTTPDurationSeconds,
		HTTPErrors,

		// Generations
		SpecsGenerated,
		GenerationDurationSeconds,

		// LLM
		LLMRequests,

		// Recovery
		RecoveryOutcomes,

		// Rate limiting
		RateLimited,

		// Errors
		Errors,
	)
}

// HTTP
func IncHTTPRequest(method, path string) {
	HTTPRequests.WithLabelValues(method, path).Inc()
}

func ObserveHTTPDuration(method, path, status string, d time.Duration) {
	HTTPDurationSeconds.WithLabelValues(method, path, status).Observe(d.Seconds())
}

func IncHTTPError(method, path, status string) {
	HTTPErrors.WithLabelValues(method, path, status).Inc()
}

// Generations
func IncSpecGenerated() {
	SpecsGenerated.Inc()
}

func ObserveGenerationDuration(d time.Duration) {
	GenerationDurationSeconds.Observe(d.Seconds())
}

// LLM
func IncLLMRequest(model string) {
	LLMRequests.WithLabelValues(model).Inc()
}

// Recovery
func IncRecovery(strategy string) {
	RecoveryOutcomes.WithLabelValues(strategy).Inc()
}

// Rate limiting
func IncRateLimited() {
	RateLimited.Inc()
}

// Errors
func IncError(component, typ string) {
	Errors.WithLabelValues(component, typ).Inc()
}
