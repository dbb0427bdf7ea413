package machine

// Action identifies one of the user-facing operations of the machine.
type Action string

const (
	ActionInsertPayment     Action = "INSERT_PAYMENT"
	ActionEjectPayment      Action = "EJECT_PAYMENT"
	ActionActivateDispenser Action = "ACTIVATE_DISPENSER"
	ActionRefill            Action = "REFILL"
)

// Transition describes the outcome of a single action.
type Transition struct {
	Action Action
	From   State
	To     State
	Count  int
	Events []Event
}

// Observer is notified after every action that reached a state handler.
type Observer interface {
	Observe(tr Transition)
}

type Option func(*Machine)

func WithRandom(r Random) Option {
	return func(m *Machine) {
		if r != nil {
			m.random = r
		}
	}
}

func WithObserver(o Observer) Option {
	return func(m *Machine) {
		m.observer = o
	}
}

// Machine is a gumball dispenser. It is not safe for concurrent use; callers
// sharing a Machine must serialize access.
type Machine struct {
	count    int
	state    State
	random   Random
	observer Observer
	events   []Event
}

func New(initialCount int, opts ...Option) *Machine {
	m := &Machine{random: defaultRandom{}}
	for _, opt := range opts {
		opt(m)
	}
	if initialCount > 0 {
		m.count = initialCount
		m.state = StateNoPayment
	} else {
		m.state = StateSoldOut
	}
	return m
}

func (m *Machine) InsertPayment() []Event {
	return m.run(ActionInsertPayment, m.insertPayment)
}

func (m *Machine) EjectPayment() []Event {
	return m.run(ActionEjectPayment, m.ejectPayment)
}

// ActivateDispenser turns the crank and then dispenses from whichever state
// the turn left the machine in.
func (m *Machine) ActivateDispenser() []Event {
	return m.run(ActionActivateDispenser, func() {
		m.turn()
		m.dispense()
	})
}

// Refill restocks the machine. Non-positive amounts are ignored.
func (m *Machine) Refill(n int) []Event {
	if n <= 0 {
		return nil
	}
	return m.run(ActionRefill, func() { m.refill(n) })
}

func (m *Machine) InventoryCount() int {
	return m.count
}

func (m *Machine) SetInventoryCount(n int) {
	if n < 0 {
		n = 0
	}
	m.count = n
}

func (m *Machine) State() State {
	return m.state
}

// SetState repoints the current state. Unknown states are ignored.
func (m *Machine) SetState(s State) {
	if !s.valid() {
		return
	}
	m.state = s
}

func (m *Machine) StateLabel() string {
	return m.state.Label()
}

func (m *Machine) run(action Action, handle func()) []Event {
	from := m.state
	m.events = nil
	handle()
	events := m.events
	m.events = nil
	if m.observer != nil {
		m.observer.Observe(Transition{
			Action: action,
			From:   from,
			To:     m.state,
			Count:  m.count,
			Events: events,
		})
	}
	return events
}

func (m *Machine) emit(kind EventKind, msg string) {
	m.events = append(m.events, Event{Kind: kind, Message: msg})
}

func (m *Machine) releaseUnit() {
	m.emit(EventRelease, msgReleased)
	if m.count > 0 {
		m.count--
	}
}
