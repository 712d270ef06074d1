package menu

import (
	"fmt"
	"time"

	"github.com/atomicstack/gridmenu/internal/logging"
	"github.com/atomicstack/gridmenu/internal/logging/events"
)

// UndoWindow bounds how long after execution an action stays undo-eligible.
const UndoWindow = 30 * time.Second

// LastAction records the most recent execution. Err holds the action's
// failure, if any.
type LastAction struct {
	Action    Action
	Data      any
	Timestamp time.Time
	Err       error
}

// Option configures a State.
type Option func(*stateConfig)

type stateConfig struct {
	now func() time.Time
}

// WithClock overrides the time source used for the last-action record.
func WithClock(now func() time.Time) Option {
	return func(c *stateConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// State owns the open/closed lifecycle of one context menu instance.
type State[R Row] struct {
	listeners  Listeners
	now        func() time.Time
	open       bool
	descriptor Descriptor[R]
	items      []Item
	detach     []func()
	last       *LastAction
}

// NewState returns a closed menu state attaching its dismissal handlers to
// listeners. A nil listeners value disables ambient dismissal.
func NewState[R Row](listeners Listeners, opts ...Option) *State[R] {
	cfg := stateConfig{now: time.Now}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &State[R]{listeners: listeners, now: cfg.now}
}

// Open consumes ev and shows items for d, replacing any menu already open.
func (s *State[R]) Open(ev Event, d Descriptor[R], items []Item) {
	if ev != nil {
		ev.PreventDefault()
		ev.StopPropagation()
	}
	if s.open {
		events.Menu.Replace(s.descriptor.Kind().String(), d.Kind().String())
		s.detachListeners()
	}
	s.descriptor = d
	s.items = items
	s.open = true
	if s.listeners != nil {
		s.detach = append(s.detach,
			s.listeners.Listen(ListenOutsidePointer, s.Close),
			s.listeners.Listen(ListenEscape, s.Close),
		)
	}
	events.Menu.Open(d.Kind().String(), len(items), d.Position.X, d.Position.Y)
}

// Close hides the menu. Closing a closed menu does nothing.
func (s *State[R]) Close() {
	if !s.open {
		return
	}
	s.detachListeners()
	kind := s.descriptor.Kind().String()
	s.open = false
	s.descriptor = Descriptor[R]{}
	s.items = nil
	events.Menu.Close(kind)
}

func (s *State[R]) detachListeners() {
	for _, remove := range s.detach {
		remove()
	}
	s.detach = nil
}

// IsOpen reports whether a menu is showing.
func (s *State[R]) IsOpen() bool {
	return s.open
}

// Descriptor returns the context of the open menu.
func (s *State[R]) Descriptor() (Descriptor[R], bool) {
	return s.descriptor, s.open
}

// Items returns the open menu's action tree; it is empty when closed.
func (s *State[R]) Items() []Item {
	return s.items
}

// Execute runs action and records it as the last action. Failures, returned
// or panicked, are logged and swallowed; the open/closed status is left for
// the caller to decide.
func (s *State[R]) Execute(action Action, data any) {
	record := &LastAction{Action: action, Data: data, Timestamp: s.now()}
	s.last = record
	record.Err = invoke(action)
	if record.Err != nil {
		logging.Error(fmt.Errorf("context menu action %v failed: %w", data, record.Err))
		events.Menu.ActionError(fmt.Sprint(data), record.Err)
		return
	}
	events.Menu.Execute(fmt.Sprint(data))
}

func invoke(action Action) (err error) {
	if action == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("action panicked: %v", r)
		}
	}()
	return action()
}

// LastAction returns the most recent execution record.
func (s *State[R]) LastAction() (LastAction, bool) {
	if s.last == nil {
		return LastAction{}, false
	}
	return *s.last, true
}

// CanUndo reports whether the last action is still inside the undo window.
func (s *State[R]) CanUndo() bool {
	if s.last == nil {
		return false
	}
	return s.now().Sub(s.last.Timestamp) < UndoWindow
}

// Undo logs an undo attempt for the last action when it is still eligible
// and reports whether it did. Reversal itself is not performed: no policy
// for reversing host actions exists yet.
func (s *State[R]) Undo() bool {
	if s.last == nil {
		return false
	}
	age := s.now().Sub(s.last.Timestamp)
	data := fmt.Sprint(s.last.Data)
	if age >= UndoWindow {
		events.Menu.UndoExpired(data, age)
		return false
	}
	events.Menu.Undo(data, age)
	return true
}

// Dispose closes the menu and detaches its listeners on host teardown.
func (s *State[R]) Dispose() {
	s.Close()
	s.detachListeners()
}
