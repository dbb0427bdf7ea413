package machine

import (
	"fmt"
	"math"
	"testing"
)

type fixedRandom struct {
	values []int
	calls  int
}

func (f *fixedRandom) Intn(n int) int {
	v := f.values[f.calls%len(f.values)]
	f.calls++
	return v % n
}

func noWinner() Option {
	return WithRandom(&fixedRandom{values: []int{5}})
}

func alwaysWinner() Option {
	return WithRandom(&fixedRandom{values: []int{0}})
}

func messages(events []Event) []string {
	out := make([]string, len(events))
	for i, ev := range events {
		out[i] = ev.Message
	}
	return out
}

func assertMessages(t *testing.T, events []Event, want ...string) {
	t.Helper()
	got := messages(events)
	if len(got) != len(want) {
		t.Fatalf("expected messages %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("message %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func assertState(t *testing.T, m *Machine, state State, count int) {
	t.Helper()
	if m.State() != state {
		t.Fatalf("expected state %s, got %s", state, m.State())
	}
	if m.InventoryCount() != count {
		t.Fatalf("expected count %d, got %d", count, m.InventoryCount())
	}
}

func TestNewStartState(t *testing.T) {
	assertState(t, New(5), StateNoPayment, 5)
	assertState(t, New(0), StateSoldOut, 0)
	assertState(t, New(-3), StateSoldOut, 0)
}

func TestStateLabels(t *testing.T) {
	cases := map[State]string{
		StateNoPayment:  "Machine is waiting for quarter",
		StateHasPayment: "Machine has a quarter",
		StateSold:       "Gumball sold",
		StateWinner:     "There is a winner!",
		StateSoldOut:    "Machine is sold out",
	}
	for state, label := range cases {
		if got := state.Label(); got != label {
			t.Fatalf("%s: expected label %q, got %q", state, label, got)
		}
	}
	if got := State(42).String(); got != "State(42)" {
		t.Fatalf("unexpected string for unknown state: %q", got)
	}
}

func TestSetStateIgnoresUnknown(t *testing.T) {
	m := New(3)
	m.SetState(StateWinner)
	if m.State() != StateWinner {
		t.Fatalf("expected %s, got %s", StateWinner, m.State())
	}
	m.SetState(State(99))
	if m.State() != StateWinner {
		t.Fatalf("unknown state should be ignored, got %s", m.State())
	}
	if m.StateLabel() != "There is a winner!" {
		t.Fatalf("unexpected label %q", m.StateLabel())
	}
}

func TestSetInventoryCountClamps(t *testing.T) {
	m := New(3)
	m.SetInventoryCount(-1)
	if m.InventoryCount() != 0 {
		t.Fatalf("expected clamped count 0, got %d", m.InventoryCount())
	}
}

func TestReleaseUnitFloorsAtZero(t *testing.T) {
	m := New(1)
	m.releaseUnit()
	m.releaseUnit()
	if m.InventoryCount() != 0 {
		t.Fatalf("expected count 0, got %d", m.InventoryCount())
	}
	assertMessages(t, m.events, msgReleased, msgReleased)
}

func TestScenarioSingleSale(t *testing.T) {
	m := New(5, noWinner())
	assertState(t, m, StateNoPayment, 5)

	assertMessages(t, m.InsertPayment(), "You inserted a quarter")
	assertState(t, m, StateHasPayment, 5)

	assertMessages(t, m.ActivateDispenser(), "You turned", "A gumball comes rolling out the slot")
	assertState(t, m, StateNoPayment, 4)
}

func TestScenarioSoldOutRefill(t *testing.T) {
	m := New(0)
	assertState(t, m, StateSoldOut, 0)

	events := m.InsertPayment()
	assertMessages(t, events, "You can’t insert a quarter, the machine is sold out")
	if events[0].Kind != EventRejected {
		t.Fatalf("expected rejection, got %s", events[0].Kind)
	}
	assertState(t, m, StateSoldOut, 0)

	assertMessages(t, m.Refill(100), "A 100 gumballs refill was done")
	assertState(t, m, StateNoPayment, 100)
}

func TestScenarioLastUnitSellsOut(t *testing.T) {
	// A winning draw cannot produce a winner with a single unit left.
	m := New(1, alwaysWinner())
	m.InsertPayment()
	assertMessages(t, m.ActivateDispenser(),
		"You turned",
		"A gumball comes rolling out the slot",
		"Oops, out of gumballs!",
	)
	assertState(t, m, StateSoldOut, 0)
}

func TestWinnerRequiresMoreThanOneUnit(t *testing.T) {
	for count := 0; count <= 1; count++ {
		m := New(5, alwaysWinner())
		m.InsertPayment()
		m.SetInventoryCount(count)
		m.turn()
		if m.State() != StateSold {
			t.Fatalf("count %d: expected %s, got %s", count, StateSold, m.State())
		}
	}
	m := New(2, alwaysWinner())
	m.InsertPayment()
	m.turn()
	if m.State() != StateWinner {
		t.Fatalf("expected %s, got %s", StateWinner, m.State())
	}
}

func TestWinnerDrawUsesTenOutcomes(t *testing.T) {
	for draw := 0; draw < winnerOdds; draw++ {
		rnd := &fixedRandom{values: []int{draw}}
		m := New(10, WithRandom(rnd))
		m.InsertPayment()
		m.turn()
		want := StateSold
		if draw == 0 {
			want = StateWinner
		}
		if m.State() != want {
			t.Fatalf("draw %d: expected %s, got %s", draw, want, m.State())
		}
	}
}

func TestWinnerDispensesTwo(t *testing.T) {
	m := New(5, alwaysWinner())
	m.InsertPayment()
	assertMessages(t, m.ActivateDispenser(),
		"You turned",
		"YOU’RE A WINNER! You get two gumballs for your quarter",
		"A gumball comes rolling out the slot",
		"A gumball comes rolling out the slot",
	)
	assertState(t, m, StateNoPayment, 3)
}

func TestWinnerExhaustedAfterSecondRelease(t *testing.T) {
	m := New(2, alwaysWinner())
	m.InsertPayment()
	assertMessages(t, m.ActivateDispenser(),
		"You turned",
		"YOU’RE A WINNER! You get two gumballs for your quarter",
		"A gumball comes rolling out the slot",
		"A gumball comes rolling out the slot",
		"Oops, out of gumballs!",
	)
	assertState(t, m, StateSoldOut, 0)
}

func TestWinnerExhaustedAfterFirstRelease(t *testing.T) {
	m := New(1)
	m.SetState(StateWinner)
	m.dispense()
	assertMessages(t, m.events,
		"YOU’RE A WINNER! You get two gumballs for your quarter",
		"A gumball comes rolling out the slot",
	)
	assertState(t, m, StateSoldOut, 0)
}

func TestRefillIgnoresNonPositive(t *testing.T) {
	obs := &recordingObserver{}
	for _, start := range []int{0, 4} {
		m := New(start, WithObserver(obs))
		before := m.State()
		for _, n := range []int{0, -5} {
			if events := m.Refill(n); events != nil {
				t.Fatalf("expected no events for refill %d, got %v", n, events)
			}
		}
		assertState(t, m, before, start)
	}
	if len(obs.transitions) != 0 {
		t.Fatalf("expected no observed transitions, got %d", len(obs.transitions))
	}
}

func TestRefillNoPaymentAdds(t *testing.T) {
	m := New(4)
	assertMessages(t, m.Refill(6), "A 6 gumballs refill was done")
	assertState(t, m, StateNoPayment, 10)
}

func TestRefillNoPaymentSaturates(t *testing.T) {
	m := New(5, noWinner())
	m.Refill(math.MaxInt)
	assertState(t, m, StateNoPayment, math.MaxInt)

	m.InsertPayment()
	assertMessages(t, m.ActivateDispenser(), "You turned", "A gumball comes rolling out the slot")
	assertState(t, m, StateNoPayment, math.MaxInt-1)
}

func TestRefillSoldOutSets(t *testing.T) {
	m := New(4)
	m.SetState(StateSoldOut)
	m.Refill(7)
	assertState(t, m, StateNoPayment, 7)
}

func TestRefillRejectedWhileBusy(t *testing.T) {
	for _, state := range []State{StateHasPayment, StateSold, StateWinner} {
		m := New(3)
		m.SetState(state)
		events := m.Refill(10)
		assertMessages(t, events, "Can't refill now")
		if events[0].Kind != EventRejected {
			t.Fatalf("%s: expected rejection, got %s", state, events[0].Kind)
		}
		assertState(t, m, state, 3)
	}
}

func TestTransitionTableMessages(t *testing.T) {
	cases := []struct {
		state     State
		action    func(*Machine) []Event
		name      string
		want      string
		wantState State
	}{
		{StateNoPayment, (*Machine).EjectPayment, "eject", "You haven’t inserted a quarter", StateNoPayment},
		{StateHasPayment, (*Machine).InsertPayment, "insert", "You can’t insert another quarter", StateHasPayment},
		{StateHasPayment, (*Machine).EjectPayment, "eject", "Quarter returned", StateNoPayment},
		{StateSold, (*Machine).InsertPayment, "insert", "Please wait, we’re already giving you a gumball", StateSold},
		{StateSold, (*Machine).EjectPayment, "eject", "Sorry, you already turned the crank", StateSold},
		{StateWinner, (*Machine).InsertPayment, "insert", "Please wait, we’re already giving you a gumball", StateWinner},
		{StateWinner, (*Machine).EjectPayment, "eject", "Sorry, you already turned the crank", StateWinner},
		{StateSoldOut, (*Machine).EjectPayment, "eject", "You can’t eject, you haven’t inserted a quarter yet", StateSoldOut},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s/%s", tc.state, tc.name), func(t *testing.T) {
			m := New(3)
			m.SetState(tc.state)
			assertMessages(t, tc.action(m), tc.want)
			assertState(t, m, tc.wantState, 3)
		})
	}
}

func TestTurnAndDispenseHandlers(t *testing.T) {
	cases := []struct {
		state    State
		turn     string
		dispense string
	}{
		{StateNoPayment, "You turned, but there’s no quarter", "You need to pay first"},
		{StateSoldOut, "You turned, but there are no gumballs", "No gumball dispensed"},
	}
	for _, tc := range cases {
		m := New(3)
		m.SetState(tc.state)
		assertMessages(t, m.ActivateDispenser(), tc.turn, tc.dispense)
		assertState(t, m, tc.state, 3)
	}

	m := New(3)
	m.SetState(StateHasPayment)
	m.dispense()
	assertMessages(t, m.events, "No gumball dispensed")

	for _, state := range []State{StateSold, StateWinner} {
		m := New(3)
		m.SetState(state)
		m.turn()
		assertMessages(t, m.events, "Turning twice doesn’t get you another gumball!")
		if m.State() != state {
			t.Fatalf("turn should not change %s", state)
		}
	}
}

func TestInventoryNeverNegative(t *testing.T) {
	rnd := &fixedRandom{values: []int{0, 3, 0, 7, 1, 0, 9}}
	m := New(3, WithRandom(rnd))
	for i := 0; i < 50; i++ {
		switch i % 5 {
		case 0, 3:
			m.InsertPayment()
		case 1:
			m.ActivateDispenser()
		case 2:
			m.EjectPayment()
		case 4:
			if i%20 == 4 {
				m.Refill(2)
			}
		}
		if m.InventoryCount() < 0 {
			t.Fatalf("inventory went negative at step %d", i)
		}
		if m.InventoryCount() == 0 && m.State() != StateSoldOut {
			t.Fatalf("empty machine in state %s at step %d", m.State(), i)
		}
	}
}

type recordingObserver struct {
	transitions []Transition
}

func (r *recordingObserver) Observe(tr Transition) {
	r.transitions = append(r.transitions, tr)
}

func TestObserverSeesTransitions(t *testing.T) {
	obs := &recordingObserver{}
	m := New(2, noWinner(), WithObserver(obs))
	m.InsertPayment()
	m.ActivateDispenser()

	if len(obs.transitions) != 2 {
		t.Fatalf("expected 2 transitions, got %d", len(obs.transitions))
	}
	first := obs.transitions[0]
	if first.Action != ActionInsertPayment || first.From != StateNoPayment || first.To != StateHasPayment {
		t.Fatalf("unexpected first transition: %+v", first)
	}
	second := obs.transitions[1]
	if second.Action != ActionActivateDispenser || second.To != StateNoPayment || second.Count != 1 {
		t.Fatalf("unexpected second transition: %+v", second)
	}
	if len(second.Events) != 2 || second.Events[1].Kind != EventRelease {
		t.Fatalf("unexpected events: %+v", second.Events)
	}
}
