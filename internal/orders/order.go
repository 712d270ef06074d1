package orders

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Column keys.
const (
	ColID         = "id"
	ColName       = "name"
	ColStatus     = "status"
	ColPriority   = "priority"
	ColAssignedTo = "assignedTo"
	ColDueDate    = "dueDate"
	ColProgress   = "progress"
	ColLocked     = "locked"
)

// Statuses an order moves through.
const (
	StatusDraft      = "Draft"
	StatusPending    = "Pending"
	StatusApproved   = "Approved"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Statuses lists every status in workflow order.
func Statuses() []string {
	return []string{StatusDraft, StatusPending, StatusApproved, StatusInProgress, StatusCompleted}
}

// ParseStatus matches text against the known statuses, ignoring case and
// surrounding space.
func ParseStatus(text string) (string, error) {
	text = strings.TrimSpace(text)
	for _, s := range Statuses() {
		if strings.EqualFold(s, text) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown status %q (want one of %s)", text, strings.Join(Statuses(), ", "))
}

// Order is one row of the demo orders table.
type Order struct {
	ID         string    `json:"id" yaml:"id"`
	Name       string    `json:"name" yaml:"name"`
	Status     string    `json:"status" yaml:"status"`
	Priority   string    `json:"priority" yaml:"priority"`
	AssignedTo string    `json:"assignedTo" yaml:"assignedTo"`
	DueDate    time.Time `json:"dueDate" yaml:"dueDate"`
	Progress   int       `json:"progress" yaml:"progress"`
	Locked     bool      `json:"locked" yaml:"locked"`
}

// Key returns the order ID.
func (o Order) Key() string { return o.ID }

// Value returns the field stored under column.
func (o Order) Value(column string) any {
	switch column {
	case ColID:
		return o.ID
	case ColName:
		return o.Name
	case ColStatus:
		return o.Status
	case ColPriority:
		return o.Priority
	case ColAssignedTo:
		return o.AssignedTo
	case ColDueDate:
		return o.DueDate
	case ColProgress:
		return o.Progress
	case ColLocked:
		return o.Locked
	default:
		return nil
	}
}

// Set parses text into the field stored under column.
func (o *Order) Set(column, text string) error {
	text = strings.TrimSpace(text)
	switch column {
	case ColID:
		return fmt.Errorf("the id of %s cannot be changed", o.ID)
	case ColName:
		if text == "" {
			return fmt.Errorf("name of %s cannot be empty", o.ID)
		}
		o.Name = text
	case ColStatus:
		o.Status = text
	case ColPriority:
		o.Priority = text
	case ColAssignedTo:
		o.AssignedTo = text
	case ColDueDate:
		if text == "" {
			o.DueDate = time.Time{}
			return nil
		}
		due, err := time.Parse(time.DateOnly, text)
		if err != nil {
			return fmt.Errorf("parse due date %q: %w", text, err)
		}
		o.DueDate = due
	case ColProgress:
		n, err := strconv.Atoi(strings.TrimSuffix(text, "%"))
		if err != nil {
			return fmt.Errorf("parse progress %q: %w", text, err)
		}
		if n < 0 || n > 100 {
			return fmt.Errorf("progress %d out of range 0-100", n)
		}
		o.Progress = n
	case ColLocked:
		locked, err := strconv.ParseBool(text)
		if err != nil {
			return fmt.Errorf("parse locked %q: %w", text, err)
		}
		o.Locked = locked
	default:
		return fmt.Errorf("unknown column %q", column)
	}
	return nil
}

// Text returns the editable text form of column.
func (o Order) Text(column string) string {
	switch v := o.Value(column).(type) {
	case nil:
		return ""
	case time.Time:
		if v.IsZero() {
			return ""
		}
		return v.Format(time.DateOnly)
	default:
		return fmt.Sprint(v)
	}
}

// Copy returns a duplicate of o under a new id, in draft status and unlocked.
func (o Order) Copy(id string) Order {
	dup := o
	dup.ID = id
	dup.Name = o.Name + " (Copy)"
	dup.Status = StatusDraft
	dup.Locked = false
	return dup
}

// Columns lists every column key in display order.
func Columns() []string {
	return []string{ColID, ColName, ColStatus, ColPriority, ColAssignedTo, ColDueDate, ColProgress, ColLocked}
}

// Title returns the header label of a column.
func Title(column string) string {
	switch column {
	case ColID:
		return "Order ID"
	case ColName:
		return "Name"
	case ColStatus:
		return "Status"
	case ColPriority:
		return "Priority"
	case ColAssignedTo:
		return "Assigned To"
	case ColDueDate:
		return "Due Date"
	case ColProgress:
		return "Progress"
	case ColLocked:
		return "Locked"
	default:
		return column
	}
}

// Seed returns the demo orders.
func Seed() []Order {
	return []Order{
		{ID: "PO-2024-001", Name: "Purchase Order PO-2024-001", Status: StatusApproved, Priority: "High", AssignedTo: "John Smith", DueDate: date(2024, 2, 15), Progress: 75},
		{ID: "SR-2024-005", Name: "Sample Request SR-2024-005", Status: StatusPending, Priority: "Medium", AssignedTo: "Jane Doe", DueDate: date(2024, 2, 20), Progress: 30, Locked: true},
		{ID: "MO-2024-003", Name: "Material Order MO-2024-003", Status: StatusInProgress, Priority: "High", AssignedTo: "Mike Johnson", DueDate: date(2024, 2, 18), Progress: 60},
		{ID: "QC-2024-002", Name: "Quality Check QC-2024-002", Status: StatusCompleted, Priority: "Low", AssignedTo: "Sarah Wilson", DueDate: date(2024, 2, 10), Progress: 100},
		{ID: "SC-2024-001", Name: "Supplier Contract SC-2024-001", Status: StatusDraft, Priority: "Medium", AssignedTo: "Tom Brown", DueDate: date(2024, 3, 1), Progress: 15},
	}
}

// Generate returns n synthetic orders for exercising the windowed grid.
func Generate(n int) []Order {
	statuses := Statuses()
	priorities := []string{"Low", "Medium", "High"}
	people := []string{"John Smith", "Jane Doe", "Mike Johnson", "Sarah Wilson", "Tom Brown"}
	out := make([]Order, n)
	base := date(2024, 1, 1)
	for i := range out {
		out[i] = Order{
			ID:         fmt.Sprintf("GEN-%05d", i+1),
			Name:       fmt.Sprintf("Generated Order %d", i+1),
			Status:     statuses[i%len(statuses)],
			Priority:   priorities[(i/5)%len(priorities)],
			AssignedTo: people[(i/3)%len(people)],
			DueDate:    base.AddDate(0, 0, i%90),
			Progress:   (i * 7) % 101,
			Locked:     i%11 == 0,
		}
	}
	return out
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
