package dispatcher

import (
	"slices"

	"github.com/atomicstack/gridmenu/internal/backend"
	"github.com/atomicstack/gridmenu/internal/orders"
	"github.com/atomicstack/gridmenu/internal/state"
)

type Result struct {
	OrdersUpdated bool
	Err           error
}

type Dispatcher struct {
	orders state.OrderStore
}

func New(o state.OrderStore) *Dispatcher {
	return &Dispatcher{orders: o}
}

// Handle folds a backend event into the order store. Snapshots equal to
// the stored one are dropped so the grid is not rebuilt on every tick.
func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		res.Err = evt.Err
		return res
	}
	switch evt.Kind {
	case backend.KindOrders:
		if slices.EqualFunc(d.orders.Entries(), evt.Data, sameOrder) && d.orders.Revision() > 0 {
			return res
		}
		d.orders.SetEntries(evt.Data)
		res.OrdersUpdated = true
	}
	return res
}

func sameOrder(a, b orders.Order) bool {
	return a.ID == b.ID &&
		a.Name == b.Name &&
		a.Status == b.Status &&
		a.Priority == b.Priority &&
		a.AssignedTo == b.AssignedTo &&
		a.DueDate.Equal(b.DueDate) &&
		a.Progress == b.Progress &&
		a.Locked == b.Locked
}
