package command

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/gridmenu/internal/logging/events"
)

// DefaultTimeout bounds a single side effect.
const DefaultTimeout = 30 * time.Second

// Request encapsulates a side effect queued by a menu action.
type Request struct {
	ID    string
	Label string
	// Run performs the work and returns an informational message.
	Run func(ctx context.Context) (string, error)
	// Refresh asks the model to reload rows once Run succeeds.
	Refresh bool
}

// Result is delivered to the model when a request finishes.
type Result struct {
	ID      string
	Label   string
	Info    string
	Err     error
	Refresh bool
}

// Bus turns requests into Bubble Tea commands.
type Bus struct {
	timeout time.Duration
}

// New initialises a command bus. A non-positive timeout uses DefaultTimeout.
func New(timeout time.Duration) *Bus {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Bus{timeout: timeout}
}

// Execute wraps req into a command while emitting trace logs.
func (b *Bus) Execute(ctx context.Context, req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Label)
	if req.Run == nil {
		events.Command.Skip(req.ID, req.Label)
		return nil
	}
	return func() tea.Msg {
		runCtx, cancel := context.WithTimeout(ctx, b.timeout)
		defer cancel()
		info, err := req.Run(runCtx)
		res := Result{ID: req.ID, Label: req.Label, Info: info, Err: err, Refresh: req.Refresh && err == nil}
		if err == nil && info == "" {
			events.Command.NoOp(req.ID, req.Label)
		}
		events.Command.Result(req.ID, req.Label, fmt.Sprintf("%T", res))
		return res
	}
}
