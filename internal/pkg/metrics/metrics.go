package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values
const (
	ResultSuccess   = "success"
	ResultRejected  = "rejected"
	ResultDuplicate = "duplicate"
	ResultError     = "error"
)

var (
	// Logins counts login attempts by login type and result
	Logins = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "feedbackd", Name: "logins_total", Help: "Login attempts by login type and result",
	}, []string{"login_type", "result"})
	// Submissions counts feedback submissions by result
	Submissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "feedbackd", Name: "submissions_total", Help: "Feedback submissions by result",
	}, []string{"result"})
	// DBPing records database ping latency in seconds
	DBPing = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "feedbackd", Name: "db_ping_seconds", Help: "DB ping latency",
		Buckets: prometheus.DefBuckets,
	})
)

func init() {
	prometheus.MustRegister(Logins, Submissions, DBPing)
}

// Handler serves the default registry in the Prometheus text format
func Handler() http.Handler { return promhttp.Handler() }

// ObserveDBPing records one ping round trip
func ObserveDBPing(d time.Duration) { DBPing.Observe(d.Seconds()) }

// CountLogin increments the login counter for loginType and result
func CountLogin(loginType, result string) { Logins.WithLabelValues(loginType, result).Inc() }

// CountSubmission increments the submission counter for result
func CountSubmission(result string) { Submissions.WithLabelValues(result).Inc() }
