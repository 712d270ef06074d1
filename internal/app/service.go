package app

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/uuid"

	"github.com/atomicstack/gridmenu/internal/export"
	"github.com/atomicstack/gridmenu/internal/menu"
	"github.com/atomicstack/gridmenu/internal/orders"
	"github.com/atomicstack/gridmenu/internal/store"
	"github.com/atomicstack/gridmenu/internal/views"
)

// Service backs the UI actions with the SQLite store, the export writers,
// the saved views directory and the system clipboard.
type Service struct {
	store     *store.Store
	exportDir string
	viewsDir  string
	now       func() time.Time
	copy      func(string) error
}

// NewService wires st and the output directories.
func NewService(st *store.Store, exportDir, viewsDir string) *Service {
	return &Service{
		store:     st,
		exportDir: exportDir,
		viewsDir:  viewsDir,
		now:       time.Now,
		copy:      clipboard.WriteAll,
	}
}

func (s *Service) List(ctx context.Context) ([]orders.Order, error) {
	return s.store.List(ctx)
}

func (s *Service) Save(ctx context.Context, rows ...orders.Order) error {
	return s.store.SaveAll(ctx, rows)
}

func (s *Service) Delete(ctx context.Context, ids ...string) error {
	for _, id := range ids {
		if err := s.store.Delete(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) AddNote(ctx context.Context, id, text string) error {
	_, err := s.store.AddNote(ctx, id, text)
	return err
}

func (s *Service) Notes(ctx context.Context, id string) ([]store.Note, error) {
	return s.store.Notes(ctx, id)
}

func (s *Service) Export(format menu.ExportFormat, t export.Table) (string, error) {
	return export.Write(s.exportDir, format, t, s.now())
}

func (s *Service) SaveView(v views.View) (string, error) {
	return views.Save(s.viewsDir, v)
}

func (s *Service) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard is not available on this system")
	}
	return s.copy(text)
}

// NewID derives a unique id for a duplicate of o.
func (s *Service) NewID(o orders.Order) string {
	return fmt.Sprintf("%s-copy-%s", o.ID, uuid.NewString()[:8])
}
