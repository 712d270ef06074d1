// Package views saves and restores grid layouts as YAML files.
package views

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atomicstack/gridmenu/internal/grid"
	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/atomicstack/gridmenu/internal/menu"
)

const ext = ".yaml"

var validName = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// View is a saved grid layout.
type View struct {
	Name          string         `yaml:"name"`
	SortColumn    string         `yaml:"sort_column,omitempty"`
	SortDirection string         `yaml:"sort_direction,omitempty"`
	FilterColumn  string         `yaml:"filter_column,omitempty"`
	FilterQuery   string         `yaml:"filter_query,omitempty"`
	GroupBy       string         `yaml:"group_by,omitempty"`
	Hidden        []string       `yaml:"hidden,omitempty"`
	Widths        map[string]int `yaml:"widths,omitempty"`
	Paginated     bool           `yaml:"paginated,omitempty"`
}

// Capture records the layout of g under name.
func Capture[R menu.Row](name string, g *grid.Grid[R]) View {
	v := View{
		Name:      name,
		GroupBy:   g.GroupedBy(),
		Paginated: g.Paginated(),
		Widths:    make(map[string]int),
	}
	if spec, ok := g.SortSpec(); ok {
		v.SortColumn = spec.Column
		v.SortDirection = spec.Direction.String()
	}
	if f := g.Filter(); f.Active() {
		v.FilterColumn = f.Column
		v.FilterQuery = f.Query
	}
	for _, col := range g.Columns() {
		if col.Hidden {
			v.Hidden = append(v.Hidden, col.Key)
		}
		v.Widths[col.Key] = col.Width
	}
	return v
}

// Apply restores v onto g. Unknown columns are reported after every other
// setting has been applied.
func Apply[R menu.Row](v View, g *grid.Grid[R]) error {
	var errs []error
	for key, width := range v.Widths {
		if err := g.ResizeColumn(key, width); err != nil {
			errs = append(errs, err)
		}
	}
	g.ShowColumns()
	for _, key := range v.Hidden {
		if err := g.HideColumn(key); err != nil {
			errs = append(errs, err)
		}
	}
	if v.SortColumn == "" {
		g.ClearSort()
	} else {
		dir := menu.Ascending
		if v.SortDirection == menu.Descending.String() {
			dir = menu.Descending
		}
		if err := g.Sort(v.SortColumn, dir); err != nil {
			errs = append(errs, err)
		}
	}
	if _, err := g.SetFilter(v.FilterColumn, v.FilterQuery); err != nil {
		errs = append(errs, err)
	}
	if err := g.GroupBy(v.GroupBy); err != nil {
		errs = append(errs, err)
	}
	if g.Paginated() != v.Paginated {
		g.TogglePagination()
	}
	return errors.Join(errs...)
}

// Save writes v to dir/<name>.yaml and returns the path.
func Save(dir string, v View) (string, error) {
	if !validName.MatchString(v.Name) {
		return "", fmt.Errorf("invalid view name %q", v.Name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("ensure views dir: %w", err)
	}
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode view %s: %w", v.Name, err)
	}
	path := filepath.Join(dir, v.Name+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write view %s: %w", v.Name, err)
	}
	events.Store.View("save", path)
	return path, nil
}

// Load reads the view called name from dir.
func Load(dir, name string) (View, error) {
	if !validName.MatchString(name) {
		return View{}, fmt.Errorf("invalid view name %q", name)
	}
	path := filepath.Join(dir, name+ext)
	data, err := os.ReadFile(path)
	if err != nil {
		return View{}, fmt.Errorf("read view %s: %w", name, err)
	}
	var v View
	if err := yaml.Unmarshal(data, &v); err != nil {
		return View{}, fmt.Errorf("decode view %s: %w", name, err)
	}
	if v.Name == "" {
		v.Name = name
	}
	events.Store.View("load", path)
	return v, nil
}

// List returns the saved view names in dir, sorted. A missing dir holds no
// views.
func List(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list views: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ext))
	}
	slices.Sort(names)
	return names, nil
}
