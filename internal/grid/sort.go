package grid

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/atomicstack/gridmenu/internal/menu"
)

// SortSpec orders rows by one column.
type SortSpec struct {
	Column    string
	Direction menu.SortDirection
}

// SortRows returns a sorted copy of rows. The sort is stable: rows with equal
// values keep their relative order in either direction.
func SortRows[R menu.Row](rows []R, spec SortSpec) []R {
	out := slices.Clone(rows)
	if spec.Column == "" {
		return out
	}
	slices.SortStableFunc(out, func(a, b R) int {
		c := CompareValues(a.Value(spec.Column), b.Value(spec.Column))
		if spec.Direction == menu.Descending {
			return -c
		}
		return c
	})
	return out
}

// CompareValues orders two cell values. Numbers compare numerically, times
// chronologically, bools false first, and nil before anything else. Mixed or
// unknown types fall back to their formatted text.
func CompareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	if x, ok := number(a); ok {
		if y, ok := number(b); ok {
			return cmp.Compare(x, y)
		}
	}
	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			switch {
			case x == y:
				return 0
			case !x:
				return -1
			default:
				return 1
			}
		}
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// GroupRows stably reorders rows so equal values of column are contiguous,
// groups appearing in ascending value order. Order inside a group is kept.
func GroupRows[R menu.Row](rows []R, column string) []R {
	out := slices.Clone(rows)
	if column == "" {
		return out
	}
	slices.SortStableFunc(out, func(a, b R) int {
		return CompareValues(a.Value(column), b.Value(column))
	})
	return out
}
