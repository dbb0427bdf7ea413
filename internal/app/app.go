package app

import (
	"errors"
	"sync"

	"gumball-machine/internal/config"
	"gumball-machine/internal/display"
	"gumball-machine/internal/machine"
	"gumball-machine/internal/metrics"

	"go.uber.org/zap"
)

// App owns a single machine and serializes every call into it.
type App struct {
	cfg     *config.Config
	log     *zap.Logger
	metrics *metrics.Metrics

	mu      sync.Mutex
	machine *machine.Machine
}

func New(cfg *config.Config, log *zap.Logger, m *metrics.Metrics, opts ...machine.Option) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}
	if log == nil {
		log = zap.NewNop()
	}
	if m == nil {
		m = metrics.NewNoop()
	}
	a := &App{cfg: cfg, log: log, metrics: m}
	obs := &observer{log: log, metrics: m}
	opts = append([]machine.Option{machine.WithObserver(obs)}, opts...)
	a.machine = machine.New(cfg.Machine.InitialCountValue(), opts...)
	m.Inventory.Set(float64(a.machine.InventoryCount()))
	log.Info("machine ready",
		zap.Int("inventory", a.machine.InventoryCount()),
		zap.Stringer("state", a.machine.State()),
	)
	return a, nil
}

func (a *App) InsertPayment() []machine.Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.machine.InsertPayment()
}

func (a *App) EjectPayment() []machine.Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.machine.EjectPayment()
}

func (a *App) ActivateDispenser() []machine.Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.machine.ActivateDispenser()
}

func (a *App) Refill(n int) []machine.Event {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.machine.Refill(n)
}

func (a *App) Report() display.Report {
	a.mu.Lock()
	defer a.mu.Unlock()
	return display.NewReport(a.machine)
}

func (a *App) State() machine.State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.machine.State()
}
