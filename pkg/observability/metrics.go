package observability

import (
	"net/http"
	"strconv"

	"github.com/aretw0/rpn/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Namespace prefixes every metric name.
const Namespace = "rpn"

// Metrics holds the calculator collectors.
type Metrics struct {
	Operations *prometheus.CounterVec
	Errors     *prometheus.CounterVec
	NoArgs     *prometheus.CounterVec
	StackDepth prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "operations_total",
				Help:      "Total number of numeric operations dispatched",
			},
			[]string{"op", "shifted"},
		),
		Errors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "operation_errors_total",
				Help:      "Operations that ended with ERROR on the display",
			},
			[]string{"op"},
		),
		NoArgs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "missing_operand_total",
				Help:      "Operations refused because X or Y was absent",
			},
			[]string{"operand"},
		),
		StackDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "stack_depth",
			Help:      "Number of entries on the operand stack",
		}),
	}
	for _, c := range []prometheus.Collector{m.Operations, m.Errors, m.NoArgs, m.StackDepth} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks records engine activity.
func (m *Metrics) Hooks() domain.Hooks {
	return domain.Hooks{
		OnOperation: func(ev domain.OperationEvent) {
			m.Operations.WithLabelValues(ev.Name, strconv.FormatBool(ev.Shifted)).Inc()
			if ev.Err != nil {
				m.Errors.WithLabelValues(ev.Name).Inc()
			}
		},
		OnNoArg: func(which domain.Operand) {
			m.NoArgs.WithLabelValues(string(which)).Inc()
		},
		OnDisplay: func(d domain.Display) {
			m.StackDepth.Set(float64(d.Size))
		},
	}
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
