package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ReportsSubmitted = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ecowaste", Name: "reports_submitted_total", Help: "Waste reports created",
	})
	StatusChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ecowaste", Name: "report_status_changes_total", Help: "Report status transitions",
	}, []string{"to"})
	CompletionsRecorded = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "ecowaste", Name: "training_completions_total", Help: "Training completions recorded",
	})
	RequestErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ecowaste", Name: "request_errors_total", Help: "API errors by taxonomy code",
	}, []string{"code"})
)

func init() {
	prometheus.MustRegister(ReportsSubmitted, StatusChanges, CompletionsRecorded, RequestErrors)
}

func Handler() http.Handler { return promhttp.Handler() }
