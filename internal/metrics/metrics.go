package metrics

type Counter interface {
	Inc()
}

type Gauge interface {
	Set(v float64)
}

type Metrics struct {
	PaymentsInserted     Counter
	PaymentsEjected      Counter
	DispenserActivations Counter
	UnitsReleased        Counter
	Winners              Counter
	SoldOut              Counter
	Refills              Counter
	Rejections           Counter
	Inventory            Gauge
}

type noopCounter struct{}

func (noopCounter) Inc() {}

type noopGauge struct{}

func (noopGauge) Set(float64) {}

func NewNoop() *Metrics {
	n := noopCounter{}
	return &Metrics{
		PaymentsInserted:     n,
		PaymentsEjected:      n,
		DispenserActivations: n,
		UnitsReleased:        n,
		Winners:              n,
		SoldOut:              n,
		Refills:              n,
		Rejections:           n,
		Inventory:            noopGauge{},
	}
}
