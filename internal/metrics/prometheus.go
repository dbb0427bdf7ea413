package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const promNamespace = "gumball"

type promCounter struct {
	counter prometheus.Counter
}

func (p promCounter) Inc() {
	p.counter.Inc()
}

type promGauge struct {
	gauge prometheus.Gauge
}

func (p promGauge) Set(v float64) {
	p.gauge.Set(v)
}

type Prometheus struct {
	Metrics *Metrics

	registry   *prometheus.Registry
	inserted   prometheus.Counter
	ejected    prometheus.Counter
	activated  prometheus.Counter
	released   prometheus.Counter
	winners    prometheus.Counter
	soldOut    prometheus.Counter
	refills    prometheus.Counter
	rejections prometheus.Counter
	inventory  prometheus.Gauge
}

func newCounter(name, help string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: promNamespace,
		Name:      name,
		Help:      help,
	})
}

func NewPrometheus() *Prometheus {
	registry := prometheus.NewRegistry()
	inserted := newCounter("payments_inserted_total", "Total number of accepted payments.")
	ejected := newCounter("payments_ejected_total", "Total number of returned payments.")
	activated := newCounter("dispenser_activations_total", "Total number of crank turns.")
	released := newCounter("units_released_total", "Total number of gumballs released.")
	winners := newCounter("winners_total", "Total number of winning turns.")
	soldOut := newCounter("sold_out_total", "Total number of times the machine ran out of gumballs.")
	refills := newCounter("refills_total", "Total number of accepted refills.")
	rejections := newCounter("rejections_total", "Total number of actions rejected in the current state.")
	inventory := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: promNamespace,
		Name:      "inventory_units",
		Help:      "Gumballs currently in the machine.",
	})

	registry.MustRegister(inserted, ejected, activated, released, winners, soldOut, refills, rejections, inventory)

	m := &Metrics{
		PaymentsInserted:     promCounter{inserted},
		PaymentsEjected:      promCounter{ejected},
		DispenserActivations: promCounter{activated},
		UnitsReleased:        promCounter{released},
		Winners:              promCounter{winners},
		SoldOut:              promCounter{soldOut},
		Refills:              promCounter{refills},
		Rejections:           promCounter{rejections},
		Inventory:            promGauge{inventory},
	}

	return &Prometheus{
		Metrics:    m,
		registry:   registry,
		inserted:   inserted,
		ejected:    ejected,
		activated:  activated,
		released:   released,
		winners:    winners,
		soldOut:    soldOut,
		refills:    refills,
		rejections: rejections,
		inventory:  inventory,
	}
}

func (p *Prometheus) Gather() ([]*dto.MetricFamily, error) {
	return p.registry.Gather()
}
