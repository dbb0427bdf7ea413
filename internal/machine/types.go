package machine

import "fmt"

type State int

const (
	StateNoPayment State = iota
	StateHasPayment
	StateSold
	StateWinner
	StateSoldOut
)

var stateNames = [...]string{
	StateNoPayment:  "NO_PAYMENT",
	StateHasPayment: "HAS_PAYMENT",
	StateSold:       "SOLD",
	StateWinner:     "WINNER",
	StateSoldOut:    "SOLD_OUT",
}

var stateLabels = [...]string{
	StateNoPayment:  "Machine is waiting for quarter",
	StateHasPayment: "Machine has a quarter",
	StateSold:       "Gumball sold",
	StateWinner:     "There is a winner!",
	StateSoldOut:    "Machine is sold out",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateNames[s]
}

// Label is the human-readable description shown on the machine's monitor.
func (s State) Label() string {
	if s < 0 || int(s) >= len(stateLabels) {
		return s.String()
	}
	return stateLabels[s]
}

func (s State) valid() bool {
	return s >= StateNoPayment && s <= StateSoldOut
}

type EventKind string

const (
	EventAction   EventKind = "ACTION"
	EventRejected EventKind = "REJECTED"
	EventRelease  EventKind = "RELEASE"
	EventWinner   EventKind = "WINNER"
	EventSoldOut  EventKind = "SOLD_OUT"
	EventRefill   EventKind = "REFILL"
)

// Event is a notification emitted while handling an action.
type Event struct {
	Kind    EventKind
	Message string
}

const (
	msgInserted         = "You inserted a quarter"
	msgNothingToEject   = "You haven’t inserted a quarter"
	msgNoPaymentTurn    = "You turned, but there’s no quarter"
	msgPayFirst         = "You need to pay first"
	msgAlreadyInserted  = "You can’t insert another quarter"
	msgReturned         = "Quarter returned"
	msgTurned           = "You turned"
	msgNoneDispensed    = "No gumball dispensed"
	msgCannotRefill     = "Can't refill now"
	msgPleaseWait       = "Please wait, we’re already giving you a gumball"
	msgAlreadyTurned    = "Sorry, you already turned the crank"
	msgTurnTwice        = "Turning twice doesn’t get you another gumball!"
	msgOutOfUnits       = "Oops, out of gumballs!"
	msgWinner           = "YOU’RE A WINNER! You get two gumballs for your quarter"
	msgSoldOutInsert    = "You can’t insert a quarter, the machine is sold out"
	msgSoldOutEject     = "You can’t eject, you haven’t inserted a quarter yet"
	msgSoldOutTurn      = "You turned, but there are no gumballs"
	msgReleased         = "A gumball comes rolling out the slot"
	msgRefilledTemplate = "A %d gumballs refill was done"
)
