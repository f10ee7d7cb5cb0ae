package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	usersCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Name:      "users_created_total",
		Help:      "Users registered.",
	})
	exercisesLogged = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Name:      "exercises_logged_total",
		Help:      "Exercises appended to a user's history.",
	})
	logQueries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Name:      "log_queries_total",
		Help:      "Exercise log queries served, by filtering strategy.",
	}, []string{"strategy"})
	domainErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exercise_tracker",
		Name:      "domain_errors_total",
		Help:      "Errors returned to clients in a 200 response body, by kind.",
	}, []string{"kind"})
	requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "exercise_tracker",
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)

func init() {
	prometheus.MustRegister(usersCreated, exercisesLogged, logQueries, domainErrors, requestDuration)
}

func RecordUserCreated() {
	usersCreated.Inc()
}

func RecordExerciseLogged() {
	exercisesLogged.Inc()
}

func RecordLogQuery(strategy string) {
	logQueries.WithLabelValues(strategy).Inc()
}

// RecordDomainError counts an error rendered into a response body. kind is one
// of "not_found", "persistence" or "request".
func RecordDomainError(kind string) {
	domainErrors.WithLabelValues(kind).Inc()
}

func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}
