// Package metrics exposes import counters. Registration is optional: a nil
// *Metrics disables all counting, so library code can stay unconditional.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the importer's counters.
type Metrics struct {
	rowsParsed     prometheus.Counter
	rowsSkipped    prometheus.Counter
	savesSucceeded prometheus.Counter
	savesFailed    prometheus.Counter
}

// New registers the importer counters with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		rowsParsed: factory.NewCounter(prometheus.CounterOpts{
			Name: "importer_rows_parsed_total",
			Help: "Data rows successfully parsed into candidate transactions.",
		}),
		rowsSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "importer_rows_skipped_total",
			Help: "Data rows dropped for an unparsable amount.",
		}),
		savesSucceeded: factory.NewCounter(prometheus.CounterOpts{
			Name: "importer_saves_succeeded_total",
			Help: "Pending transactions persisted by the backend.",
		}),
		savesFailed: factory.NewCounter(prometheus.CounterOpts{
			Name: "importer_saves_failed_total",
			Help: "Pending transactions the backend rejected.",
		}),
	}
}

// AddParsed counts parsed rows.
func (m *Metrics) AddParsed(n int) {
	if m != nil {
		m.rowsParsed.Add(float64(n))
	}
}

// AddSkipped counts silently skipped rows.
func (m *Metrics) AddSkipped(n int) {
	if m != nil {
		m.rowsSkipped.Add(float64(n))
	}
}

// AddSaved counts successful row saves.
func (m *Metrics) AddSaved(n int) {
	if m != nil {
		m.savesSucceeded.Add(float64(n))
	}
}

// AddSaveFailed counts rejected row saves.
func (m *Metrics) AddSaveFailed(n int) {
	if m != nil {
		m.savesFailed.Add(float64(n))
	}
}
