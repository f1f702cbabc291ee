// internal/schema/table.go
package schema

import "fmt"

// Item is one schema entry.
// Field is the persisted name; Display is the human-facing menu label.
type Item struct {
	Field   string
	Display string
	Default int16
}

// Table is the ordered, immutable parameter list.
// Slot i of every record built from a Table belongs to At(i).
type Table struct {
	items []Item
	index map[string]int
}

// NewTable builds a table from items in declaration order.
// Duplicate or empty field names are authoring defects and panic.
func NewTable(items ...Item) *Table {
	if err := Validate(items); err != nil {
		panic(err)
	}

	t := &Table{
		items: make([]Item, len(items)),
		index: make(map[string]int, len(items)),
	}
	copy(t.items, items)
	for i, it := range t.items {
		t.index[it.Field] = i
	}
	return t
}

// Validate checks field name uniqueness.
// It performs declarative validation only.
func Validate(items []Item) error {
	seen := make(map[string]int, len(items))
	for i, it := range items {
		if it.Field == "" {
			return fmt.Errorf("schema: item %d has an empty name", i)
		}
		if prev, ok := seen[it.Field]; ok {
			return fmt.Errorf("schema: duplicate name %q at items %d and %d", it.Field, prev, i)
		}
		seen[it.Field] = i
	}
	return nil
}

// Len is the number of slots.
func (t *Table) Len() int { return len(t.items) }

// At returns the item for slot i.
func (t *Table) At(i int) Item { return t.items[i] }

// Items returns a copy of all items in slot order.
func (t *Table) Items() []Item {
	out := make([]Item, len(t.items))
	copy(out, t.items)
	return out
}

// Index resolves a persisted field name to its slot.
// Matching is exact and case-sensitive.
func (t *Table) Index(field string) (int, bool) {
	i, ok := t.index[field]
	return i, ok
}

// Displays returns the display-name table in slot order.
func (t *Table) Displays() []string {
	out := make([]string, len(t.items))
	for i, it := range t.items {
		out[i] = it.Display
	}
	return out
}
