package grid

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/gridmenu/internal/menu"
)

// ColumnFilter narrows rows to those whose value in Column matches Query.
type ColumnFilter struct {
	Column string
	Query  string
}

// Active reports whether the filter would drop anything.
func (f ColumnFilter) Active() bool {
	return f.Column != "" && strings.TrimSpace(f.Query) != ""
}

// FilterRows returns the rows matching f in their original order. Fuzzy
// matches are preferred; when none exist a case-insensitive substring match
// is tried.
func FilterRows[R menu.Row](rows []R, f ColumnFilter) []R {
	if !f.Active() {
		return rows
	}
	query := strings.TrimSpace(f.Query)
	values := make([]string, len(rows))
	for i, row := range rows {
		values[i] = cellText(row.Value(f.Column))
	}
	ranks := fuzzy.RankFindNormalizedFold(query, values)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]R, 0, len(matches))
		for idx, row := range rows {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, row)
			}
		}
		return filtered
	}
	lower := strings.ToLower(query)
	filtered := make([]R, 0, len(rows))
	for i, row := range rows {
		if strings.Contains(strings.ToLower(values[i]), lower) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

func cellText(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(v)
}
