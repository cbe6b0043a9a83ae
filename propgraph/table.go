package propgraph

import "fmt"

// Column is satisfied by every column view in package column
// (*column.PODView[T], *column.StringView, *column.FixedBinaryView[T]):
// each already exposes Len() int, which is all a Table needs to validate
// against the owning graph's element count.
type Column interface {
	Len() int
}

// Table is an ordered name->Column mapping
// table": names preserve insertion order (iteration order matters for
// deterministic schema printing), lookups are O(1).
type Table struct {
	names []string
	columns map[string]Column
}

// NewTable() returns an empty property table.
func NewTable() *Table {
	return &Table{columns: make(map[string]Column)}
}

// Add appends a named column to the table. Fails ErrAlreadyExists on a
// name collision within this table (a later merge into a Graph performs
// its own collision check against the graph's existing columns).
func (t *Table) Add(name string, col Column) error {
	if _, exists := t.columns[name]; exists {
		return fmt.Errorf("propgraph: column %q: %w", name, ErrAlreadyExists)
	}
	t.names = append(t.names, name)
	t.columns[name] = col
	return nil
}

// Names() returns the column names in insertion order.
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// Get returns the named column, or ErrPropertyNotFound.
func (t *Table) Get(name string) (Column, error) {
	col, ok := t.columns[name]
	if !ok {
		return nil, fmt.Errorf("propgraph: %q: %w", name, ErrPropertyNotFound)
	}
	return col, nil
}

// Remove deletes the named column, or ErrPropertyNotFound if absent.
func (t *Table) Remove(name string) error {
	if _, ok := t.columns[name]; !ok {
		return fmt.Errorf("propgraph: %q: %w", name, ErrPropertyNotFound)
	}
	delete(t.columns, name)
	for i, n := range t.names {
		if n == name {
			t.names = append(t.names[:i], t.names[i+1:]...)
			break
		}
	}
	return nil
}

// subset returns a shallow copy of the table containing only the named
// columns, used by Graph.Copy ( "Copy(node_names, edge_names)").
func (t *Table) subset(names []string) (*Table, error) {
	out := NewTable()
	for _, name := range names {
		col, err := t.Get(name)
		if err != nil {
			return nil, err
		}
		if err := out.Add(name, col); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// clone returns a shallow copy of the whole table: columns (which are
// themselves borrowed views) are shared, only the name index is copied.
// This matches "Property columns... never mutated in place
// except through a MutablePropertyView" — sharing is safe because columns
// are immutable from a Copy's perspective.
func (t *Table) clone() *Table {
	out := NewTable()
	for _, name := range t.names {
		out.names = append(out.names, name)
		out.columns[name] = t.columns[name]
	}
	return out
}
