package menu

// Event is the pointer event that opened a menu. Opening consumes it so the
// host's native menu stays hidden and enclosing handlers never see it.
type Event interface {
	PreventDefault()
	StopPropagation()
}

// ListenerKind identifies one of the ambient dismissal listeners.
type ListenerKind int

const (
	ListenOutsidePointer ListenerKind = iota
	ListenEscape
)

func (k ListenerKind) String() string {
	switch k {
	case ListenOutsidePointer:
		return "outside-pointer"
	case ListenEscape:
		return "escape"
	default:
		return "unknown"
	}
}

// Listeners is where an open menu attaches its dismissal handlers. The
// returned func detaches the handler and is safe to call more than once.
type Listeners interface {
	Listen(kind ListenerKind, fn func()) (remove func())
}

type listener struct {
	kind ListenerKind
	fn   func()
}

// Registry is a Listeners implementation the host feeds input into.
type Registry struct {
	next    int
	entries map[int]listener
	order   []int
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[int]listener)}
}

// Listen registers fn for kind.
func (r *Registry) Listen(kind ListenerKind, fn func()) func() {
	if fn == nil {
		return func() {}
	}
	r.next++
	id := r.next
	r.entries[id] = listener{kind: kind, fn: fn}
	r.order = append(r.order, id)
	return func() { r.remove(id) }
}

func (r *Registry) remove(id int) {
	if _, ok := r.entries[id]; !ok {
		return
	}
	delete(r.entries, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Fire invokes every listener registered for kind and reports whether any
// were present. Listeners may detach themselves while firing.
func (r *Registry) Fire(kind ListenerKind) bool {
	var fns []func()
	for _, id := range r.order {
		if entry := r.entries[id]; entry.kind == kind {
			fns = append(fns, entry.fn)
		}
	}
	for _, fn := range fns {
		fn()
	}
	return len(fns) > 0
}

// Len returns the number of attached listeners.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Count returns the number of attached listeners of kind.
func (r *Registry) Count(kind ListenerKind) int {
	n := 0
	for _, entry := range r.entries {
		if entry.kind == kind {
			n++
		}
	}
	return n
}

// Clear detaches everything. Hosts call it on teardown.
func (r *Registry) Clear() {
	r.entries = make(map[int]listener)
	r.order = nil
}
