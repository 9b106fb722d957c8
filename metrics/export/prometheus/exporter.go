package prometheus

import (
	"net/http"
	"strconv"
	"strings"

	panelauth "github.com/hostpanel/panelauth"
	"github.com/hostpanel/panelauth/metrics/export/internaldefs"
)

type metricsSource interface {
	MetricsSnapshot() panelauth.MetricsSnapshot
}

// Exporter renders panelauth counters in Prometheus text exposition format.
type Exporter struct {
	source metricsSource
}

// NewExporter creates an exporter reading from source. *panelauth.Session
// satisfies the source interface.
func NewExporter(source metricsSource) *Exporter {
	return &Exporter{source: source}
}

// Handler returns an http.Handler serving the metrics page.
func (e *Exporter) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
		_, _ = w.Write([]byte(e.Render()))
	})
}

// Render produces the exposition text. Output order follows
// internaldefs.CounterDefs, so it is deterministic across calls.
func (e *Exporter) Render() string {
	if e == nil || e.source == nil {
		return ""
	}

	snapshot := e.source.MetricsSnapshot()

	var b strings.Builder
	for _, def := range internaldefs.CounterDefs {
		value, ok := snapshot.Counters[def.ID]
		if !ok {
			continue
		}
		b.WriteString("# HELP ")
		b.WriteString(def.Name)
		b.WriteString(" ")
		b.WriteString(def.Help)
		b.WriteString("\n# TYPE ")
		b.WriteString(def.Name)
		b.WriteString(" counter\n")
		b.WriteString(def.Name)
		b.WriteString(" ")
		b.WriteString(strconv.FormatUint(value, 10))
		b.WriteString("\n")
	}
	return b.String()
}
