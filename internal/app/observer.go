package app

import (
	"gumball-machine/internal/machine"
	"gumball-machine/internal/metrics"

	"go.uber.org/zap"
)

// observer mirrors machine transitions into logs and metrics.
type observer struct {
	log     *zap.Logger
	metrics *metrics.Metrics
}

func (o *observer) Observe(tr machine.Transition) {
	switch tr.Action {
	case machine.ActionActivateDispenser:
		o.metrics.DispenserActivations.Inc()
	case machine.ActionInsertPayment:
		if tr.From == machine.StateNoPayment && tr.To == machine.StateHasPayment {
			o.metrics.PaymentsInserted.Inc()
		}
	case machine.ActionEjectPayment:
		if tr.From == machine.StateHasPayment && tr.To == machine.StateNoPayment {
			o.metrics.PaymentsEjected.Inc()
		}
	}
	for _, ev := range tr.Events {
		switch ev.Kind {
		case machine.EventRelease:
			o.metrics.UnitsReleased.Inc()
		case machine.EventWinner:
			o.metrics.Winners.Inc()
		case machine.EventSoldOut:
			o.metrics.SoldOut.Inc()
		case machine.EventRefill:
			o.metrics.Refills.Inc()
		case machine.EventRejected:
			o.metrics.Rejections.Inc()
			o.log.Debug("action rejected",
				zap.String("action", string(tr.Action)),
				zap.Stringer("state", tr.From),
				zap.String("message", ev.Message),
			)
		}
	}
	o.metrics.Inventory.Set(float64(tr.Count))
	if tr.From != tr.To {
		o.log.Info("state changed",
			zap.String("action", string(tr.Action)),
			zap.Stringer("from", tr.From),
			zap.Stringer("to", tr.To),
			zap.Int("inventory", tr.Count),
		)
	}
}
