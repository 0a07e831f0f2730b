package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "userhub_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "userhub_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	UsersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "userhub_users_created_total",
			Help: "Total number of users created",
		},
	)

	UsersDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "userhub_users_deleted_total",
			Help: "Total number of users deleted",
		},
	)

	UserLookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "userhub_user_lookups_total",
			Help: "Total number of user lookups",
		},
		[]string{"result"},
	)
)

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func RecordUserCreated() {
	UsersCreatedTotal.Inc()
}

func RecordUserDeleted() {
	UsersDeletedTotal.Inc()
}

func RecordUserLookup(found bool) {
	result := "found"
	if !found {
		result = "not_found"
	}
	UserLookupsTotal.WithLabelValues(result).Inc()
}
