package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Pure-Go SQLite driver.
	_ "modernc.org/sqlite"

	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/atomicstack/gridmenu/internal/orders"
)

// ErrNotFound is returned when an order does not exist.
var ErrNotFound = errors.New("order not found")

// Note is a comment attached to an order.
type Note struct {
	ID      int64
	OrderID string
	Text    string
	Created time.Time
}

// Store persists orders and notes in SQLite.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS orders (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		status      TEXT NOT NULL,
		priority    TEXT NOT NULL,
		assigned_to TEXT NOT NULL,
		due_date    TEXT NOT NULL,
		progress    INTEGER NOT NULL,
		locked      INTEGER NOT NULL,
		position    INTEGER NOT NULL
	);`,
	`CREATE TABLE IF NOT EXISTS notes (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		text     TEXT NOT NULL,
		created  TEXT NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS notes_order_ix ON notes (order_id);`,
}

// Open opens or creates the database at path. ":memory:" opens a private
// in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("database path is required")
	}
	dsn := ":memory:"
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)", filepath.ToSlash(path))
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys=ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Count returns the number of stored orders.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM orders`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

// SeedIfEmpty inserts rows when the table holds no orders yet and reports
// whether it did.
func (s *Store) SeedIfEmpty(ctx context.Context, rows []orders.Order) (bool, error) {
	n, err := s.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin seed: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	for i, o := range rows {
		if err := upsert(ctx, tx, o, i); err != nil {
			return false, err
		}
	}
	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit seed: %w", err)
	}
	events.Store.Write("seed", fmt.Sprintf("%d rows", len(rows)))
	return true, nil
}

// List returns every order in insertion order.
func (s *Store) List(ctx context.Context) ([]orders.Order, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, status, priority, assigned_to, due_date, progress, locked
		FROM orders ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	out := make([]orders.Order, 0)
	for rows.Next() {
		var o orders.Order
		var due string
		var locked int
		if err := rows.Scan(&o.ID, &o.Name, &o.Status, &o.Priority, &o.AssignedTo, &due, &o.Progress, &locked); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		if due != "" {
			parsed, err := time.Parse(time.DateOnly, due)
			if err != nil {
				return nil, fmt.Errorf("order %s due date: %w", o.ID, err)
			}
			o.DueDate = parsed
		}
		o.Locked = locked != 0
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}
	events.Store.Load("sqlite", len(out))
	return out, nil
}

// Get returns one order.
func (s *Store) Get(ctx context.Context, id string) (orders.Order, error) {
	all, err := s.List(ctx)
	if err != nil {
		return orders.Order{}, err
	}
	for _, o := range all {
		if o.ID == id {
			return o, nil
		}
	}
	return orders.Order{}, fmt.Errorf("%s: %w", id, ErrNotFound)
}

// Save inserts o or updates the stored order with the same ID. New orders
// are appended after every existing one.
func (s *Store) Save(ctx context.Context, o orders.Order) error {
	var position int
	err := s.db.QueryRowContext(ctx, `SELECT position FROM orders WHERE id = ?`, o.ID).Scan(&position)
	if errors.Is(err, sql.ErrNoRows) {
		err = s.db.QueryRowContext(ctx, `SELECT coalesce(max(position), -1) + 1 FROM orders`).Scan(&position)
	}
	if err != nil {
		return fmt.Errorf("locate order %s: %w", o.ID, err)
	}
	if err := upsert(ctx, s.db, o, position); err != nil {
		return err
	}
	events.Store.Write("save", o.ID)
	return nil
}

// SaveAll saves each order in turn, stopping at the first failure.
func (s *Store) SaveAll(ctx context.Context, rows []orders.Order) error {
	for _, o := range rows {
		if err := s.Save(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes an order and its notes.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete order %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	events.Store.Write("delete", id)
	return nil
}

// AddNote attaches text to an order.
func (s *Store) AddNote(ctx context.Context, orderID, text string) (Note, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Note{}, errors.New("note text is empty")
	}
	created := s.now().UTC()
	res, err := s.db.ExecContext(ctx, `INSERT INTO notes(order_id, text, created) VALUES(?, ?, ?)`,
		orderID, text, created.Format(time.RFC3339Nano))
	if err != nil {
		return Note{}, fmt.Errorf("add note to %s: %w", orderID, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Note{}, fmt.Errorf("add note to %s: %w", orderID, err)
	}
	events.Store.Write("note", orderID)
	return Note{ID: id, OrderID: orderID, Text: text, Created: created}, nil
}

// Notes returns the notes of an order, oldest first.
func (s *Store) Notes(ctx context.Context, orderID string) ([]Note, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, order_id, text, created FROM notes WHERE order_id = ? ORDER BY id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("list notes for %s: %w", orderID, err)
	}
	defer rows.Close()

	var out []Note
	for rows.Next() {
		var n Note
		var created string
		if err := rows.Scan(&n.ID, &n.OrderID, &n.Text, &created); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		if n.Created, err = time.Parse(time.RFC3339Nano, created); err != nil {
			return nil, fmt.Errorf("note %d timestamp: %w", n.ID, err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsert(ctx context.Context, db execer, o orders.Order, position int) error {
	due := ""
	if !o.DueDate.IsZero() {
		due = o.DueDate.Format(time.DateOnly)
	}
	locked := 0
	if o.Locked {
		locked = 1
	}
	_, err := db.ExecContext(ctx, `INSERT INTO orders(id, name, status, priority, assigned_to, due_date, progress, locked, position)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			status = excluded.status,
			priority = excluded.priority,
			assigned_to = excluded.assigned_to,
			due_date = excluded.due_date,
			progress = excluded.progress,
			locked = excluded.locked`,
		o.ID, o.Name, o.Status, o.Priority, o.AssignedTo, due, o.Progress, locked, position)
	if err != nil {
		return fmt.Errorf("save order %s: %w", o.ID, err)
	}
	return nil
}
