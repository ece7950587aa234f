// Package metrics records what a single veneer invocation did, in Prometheus
// textfile format, for CI jobs that scrape build artifacts.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Run carries the metrics of one invocation on a private registry
type Run struct {
	registry *prometheus.Registry
	start    time.Time

	Slots         *prometheus.GaugeVec
	LookupsTotal  prometheus.Counter
	TemplateTotal *prometheus.CounterVec
	Duration      prometheus.Gauge
}

// NewRun creates an empty Run with its clock started
func NewRun() *Run {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Run{
		registry: reg,
		start:    time.Now(),

		Slots: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "veneer_palette_slots",
			Help: "Palette slots resolved, by section",
		}, []string{"section"}),

		LookupsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "veneer_reference_lookups_total",
			Help: "Reference graph lookups performed during resolution",
		}),

		TemplateTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "veneer_templates_total",
			Help: "Templates processed, by result",
		}, []string{"result"}),

		Duration: factory.NewGauge(prometheus.GaugeOpts{
			Name: "veneer_run_duration_seconds",
			Help: "Wall time of the invocation",
		}),
	}
}

// ObserveSection records the slot count of one palette section
func (r *Run) ObserveSection(section string, slots int) {
	r.Slots.WithLabelValues(section).Set(float64(slots))
}

// ObserveLookups adds resolver lookups
func (r *Run) ObserveLookups(n int) {
	r.LookupsTotal.Add(float64(n))
}

// ObserveTemplate counts one template outcome
func (r *Run) ObserveTemplate(result string) {
	r.TemplateTotal.WithLabelValues(result).Inc()
}

// WriteTextfile stops the clock and writes every metric to path
func (r *Run) WriteTextfile(path string) error {
	r.Duration.Set(time.Since(r.start).Seconds())
	return prometheus.WriteToTextfile(path, r.registry)
}
