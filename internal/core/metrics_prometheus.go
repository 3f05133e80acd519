package core

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetricsRecorder exports session operation outcomes through a
// Prometheus registry as duration and result counters.
type PrometheusMetricsRecorder struct {
	durations *prometheus.CounterVec
	results   *prometheus.CounterVec
}

// NewPrometheusMetricsRecorder constructs a recorder and registers its
// collectors with reg.
func NewPrometheusMetricsRecorder(reg prometheus.Registerer) (*PrometheusMetricsRecorder, error) {
	rec := &PrometheusMetricsRecorder{
		durations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "labcore_session_operation_duration_seconds_total",
			Help: "Total time spent in session operations.",
		}, []string{"operation"}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "labcore_session_operation_results_total",
			Help: "Session operation outcomes by status.",
		}, []string{"operation", "status"}),
	}
	for _, c := range []prometheus.Collector{rec.durations, rec.results} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return rec, nil
}

// Observe records a session operation outcome.
func (r *PrometheusMetricsRecorder) Observe(_ context.Context, operation string, success bool, duration time.Duration) {
	if operation == "" {
		return
	}
	status := "error"
	if success {
		status = "success"
	}
	r.durations.WithLabelValues(operation).Add(duration.Seconds())
	r.results.WithLabelValues(operation, status).Inc()
}

var summaryDescs = map[string]*prometheus.Desc{
	"laboratories":   prometheus.NewDesc("labcore_dashboard_laboratories", "Laboratories in the session scope.", nil, nil),
	"lost_objects":   prometheus.NewDesc("labcore_dashboard_lost_objects", "Lost objects in the selected dataset.", nil, nil),
	"open_loans":     prometheus.NewDesc("labcore_dashboard_open_loan_reports", "Open loan reports in the selected dataset.", nil, nil),
	"reservations":   prometheus.NewDesc("labcore_dashboard_reservations", "Reservations in the selected dataset.", nil, nil),
	"active_members": prometheus.NewDesc("labcore_dashboard_active_members", "Active members in the selected dataset.", nil, nil),
	"schedules":      prometheus.NewDesc("labcore_dashboard_schedules", "Schedule slots in the selected dataset.", nil, nil),
}

// SummaryCollector exports the six dashboard counters of one session as
// gauges. The summary is recomputed at gather time so the metrics always
// reflect the currently selected dataset.
type SummaryCollector struct {
	session *Session
}

// NewSummaryCollector wraps the session for Prometheus collection.
func NewSummaryCollector(session *Session) *SummaryCollector {
	return &SummaryCollector{session: session}
}

// Describe implements prometheus.Collector.
func (c *SummaryCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, desc := range summaryDescs {
		ch <- desc
	}
}

// Collect implements prometheus.Collector.
func (c *SummaryCollector) Collect(ch chan<- prometheus.Metric) {
	summary := c.session.Summary()
	ch <- prometheus.MustNewConstMetric(summaryDescs["laboratories"], prometheus.GaugeValue, float64(summary.Laboratories))
	ch <- prometheus.MustNewConstMetric(summaryDescs["lost_objects"], prometheus.GaugeValue, float64(summary.LostObjects))
	ch <- prometheus.MustNewConstMetric(summaryDescs["open_loans"], prometheus.GaugeValue, float64(summary.OpenLoanReports))
	ch <- prometheus.MustNewConstMetric(summaryDescs["reservations"], prometheus.GaugeValue, float64(summary.Reservations))
	ch <- prometheus.MustNewConstMetric(summaryDescs["active_members"], prometheus.GaugeValue, float64(summary.ActiveMembers))
	ch <- prometheus.MustNewConstMetric(summaryDescs["schedules"], prometheus.GaugeValue, float64(summary.Schedules))
}
