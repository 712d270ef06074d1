package ui

import (
	"context"

	"github.com/atomicstack/gridmenu/internal/export"
	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/orders"
	"github.com/atomicstack/gridmenu/internal/store"
	"github.com/atomicstack/gridmenu/internal/views"
)

// Service performs the side effects behind the order actions. The app
// package backs it with SQLite, the export writers, the saved views
// directory and the system clipboard.
type Service interface {
	List(ctx context.Context) ([]orders.Order, error)
	Save(ctx context.Context, rows ...orders.Order) error
	Delete(ctx context.Context, ids ...string) error
	AddNote(ctx context.Context, id, text string) error
	Notes(ctx context.Context, id string) ([]store.Note, error)
	Export(format menu.ExportFormat, t export.Table) (string, error)
	SaveView(v views.View) (string, error)
	Copy(text string) error
	NewID(o orders.Order) string
}
