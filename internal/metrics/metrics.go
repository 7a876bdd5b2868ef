package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fizzquiz",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "fizzquiz",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		},
		[]string{"method"},
	)

	// AttemptsStarted counts attempts created.
	AttemptsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fizzquiz",
			Subsystem: "play",
			Name:      "attempts_started_total",
			Help:      "Total number of game attempts started.",
		},
	)

	// QuestionsGenerated counts questions generated.
	QuestionsGenerated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fizzquiz",
			Subsystem: "play",
			Name:      "questions_generated_total",
			Help:      "Total number of questions generated.",
		},
	)

	// AnswersChecked counts validated answers by correctness.
	AnswersChecked = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fizzquiz",
			Subsystem: "play",
			Name:      "answers_checked_total",
			Help:      "Total number of answers validated.",
		},
		[]string{"correct"},
	)
)

func init() {
	Registry.MustRegister(
		httpRequests,
		httpDuration,
		AttemptsStarted,
		QuestionsGenerated,
		AnswersChecked,
	)
}

// Handler returns the /metrics endpoint handler for the registry
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// Middleware records request counts and durations
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		httpRequests.WithLabelValues(r.Method, strconv.Itoa(ww.Status())).Inc()
		httpDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}
