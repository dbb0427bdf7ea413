package machine

import (
	"fmt"
	"math"
)

func (m *Machine) insertPayment() {
	switch m.state {
	case StateNoPayment:
		m.emit(EventAction, msgInserted)
		m.state = StateHasPayment
	case StateHasPayment:
		m.emit(EventRejected, msgAlreadyInserted)
	case StateSold, StateWinner:
		m.emit(EventRejected, msgPleaseWait)
	case StateSoldOut:
		m.emit(EventRejected, msgSoldOutInsert)
	}
}

func (m *Machine) ejectPayment() {
	switch m.state {
	case StateNoPayment:
		m.emit(EventRejected, msgNothingToEject)
	case StateHasPayment:
		m.emit(EventAction, msgReturned)
		m.state = StateNoPayment
	case StateSold, StateWinner:
		m.emit(EventRejected, msgAlreadyTurned)
	case StateSoldOut:
		m.emit(EventRejected, msgSoldOutEject)
	}
}

func (m *Machine) turn() {
	switch m.state {
	case StateNoPayment:
		m.emit(EventRejected, msgNoPaymentTurn)
	case StateHasPayment:
		m.emit(EventAction, msgTurned)
		if m.random.Intn(winnerOdds) == 0 && m.count > 1 {
			m.state = StateWinner
		} else {
			m.state = StateSold
		}
	case StateSold, StateWinner:
		m.emit(EventRejected, msgTurnTwice)
	case StateSoldOut:
		m.emit(EventRejected, msgSoldOutTurn)
	}
}

func (m *Machine) dispense() {
	switch m.state {
	case StateNoPayment:
		m.emit(EventRejected, msgPayFirst)
	case StateHasPayment, StateSoldOut:
		m.emit(EventRejected, msgNoneDispensed)
	case StateSold:
		m.releaseUnit()
		m.settle()
	case StateWinner:
		m.emit(EventWinner, msgWinner)
		m.releaseUnit()
		if m.count < 1 {
			m.state = StateSoldOut
			return
		}
		m.releaseUnit()
		m.settle()
	}
}

// settle moves the machine out of a dispensing state once the units are out.
func (m *Machine) settle() {
	if m.count > 0 {
		m.state = StateNoPayment
		return
	}
	m.emit(EventSoldOut, msgOutOfUnits)
	m.state = StateSoldOut
}

func (m *Machine) refill(n int) {
	switch m.state {
	case StateNoPayment:
		if n > math.MaxInt-m.count {
			m.count = math.MaxInt
		} else {
			m.count += n
		}
		m.emit(EventRefill, fmt.Sprintf(msgRefilledTemplate, n))
	case StateSoldOut:
		m.count = n
		m.emit(EventRefill, fmt.Sprintf(msgRefilledTemplate, n))
		m.state = StateNoPayment
	default:
		m.emit(EventRejected, msgCannotRefill)
	}
}
