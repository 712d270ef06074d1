package state

import "github.com/atomicstack/gridmenu/internal/orders"

// OrderStore holds the last order snapshot the UI has seen along with
// the database revision it came from.
type OrderStore interface {
	Entries() []orders.Order
	SetEntries([]orders.Order)
	Revision() int
	Find(id string) (orders.Order, bool)
}

type orderStore struct {
	entries  []orders.Order
	revision int
}

func NewOrderStore() OrderStore {
	return &orderStore{}
}

func (s *orderStore) Entries() []orders.Order {
	return cloneOrders(s.entries)
}

// SetEntries replaces the snapshot and bumps the revision.
func (s *orderStore) SetEntries(entries []orders.Order) {
	s.entries = cloneOrders(entries)
	s.revision++
}

func (s *orderStore) Revision() int {
	return s.revision
}

func (s *orderStore) Find(id string) (orders.Order, bool) {
	for _, o := range s.entries {
		if o.ID == id {
			return o, true
		}
	}
	return orders.Order{}, false
}

func cloneOrders(entries []orders.Order) []orders.Order {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]orders.Order, len(entries))
	copy(dup, entries)
	return dup
}
