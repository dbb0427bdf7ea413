package app

import (
	"context"
	"fmt"
	"io"

	"gumball-machine/internal/display"
	"gumball-machine/internal/machine"
)

type step struct {
	name string
	run  func() []machine.Event
}

// RunDemo plays the showroom script: one sale, two more sales, then a refill,
// printing the monitor between rounds.
func (a *App) RunDemo(ctx context.Context, w io.Writer) error {
	format := display.Format(a.cfg.Demo.Format)
	sale := []step{
		{"insert", a.InsertPayment},
		{"turn", a.ActivateDispenser},
	}
	rounds := [][]step{
		nil,
		sale,
		append(append([]step{}, sale...), sale...),
		{{"refill", func() []machine.Event { return a.Refill(a.cfg.Demo.RefillAmountValue()) }}},
	}
	for _, round := range rounds {
		for _, s := range round {
			if err := ctx.Err(); err != nil {
				return err
			}
			for _, ev := range s.run() {
				if _, err := io.WriteString(w, display.Event(ev, format)); err != nil {
					return fmt.Errorf("write %s event: %w", s.name, err)
				}
			}
		}
		if _, err := io.WriteString(w, display.Render(a.Report(), format)+"\n"); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}
