// internal/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HttpRequestsTotal counts handled HTTP requests.
	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of http requests handled by the service.",
		},
		[]string{"path", "method", "code"},
	)

	// BoardActionsTotal counts board actions by outcome (ok, noop, invalid).
	BoardActionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_board_actions_total",
			Help: "Total number of job board actions.",
		},
		[]string{"action", "outcome"},
	)

	// JobsOnBoard is the current number of jobs on the board.
	JobsOnBoard = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "job_board_jobs",
			Help: "Number of jobs currently on the board.",
		},
	)
)
