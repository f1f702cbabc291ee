// internal/record/record.go
package record

import "github.com/tamzrod/drivecfg/internal/schema"

// Record holds the current value of every parameter in a schema table.
// Slot order and count are fixed at construction.
// A Record is not safe for concurrent use; the owner serializes access.
type Record struct {
	table *schema.Table
	vals  []int16
}

// New returns a record with every slot set to its schema default.
func New(t *schema.Table) *Record {
	r := &Record{
		table: t,
		vals:  make([]int16, t.Len()),
	}
	r.Reset()
	return r
}

// Table returns the schema the record was built from.
func (r *Record) Table() *schema.Table { return r.table }

// Len is the number of slots.
func (r *Record) Len() int { return len(r.vals) }

// Reset restores every slot to its schema default.
func (r *Record) Reset() {
	for i := range r.vals {
		r.vals[i] = r.table.At(i).Default
	}
}

// Get returns the value of the named field.
func (r *Record) Get(field string) (int16, bool) {
	i, ok := r.table.Index(field)
	if !ok {
		return 0, false
	}
	return r.vals[i], true
}

// Set overwrites the named field. Any 16-bit value is accepted.
// It reports false when the name is not in the schema.
func (r *Record) Set(field string, v int16) bool {
	i, ok := r.table.Index(field)
	if !ok {
		return false
	}
	r.vals[i] = v
	return true
}

// At returns slot i.
func (r *Record) At(i int) int16 { return r.vals[i] }

// SetAt overwrites slot i.
func (r *Record) SetAt(i int, v int16) { r.vals[i] = v }

// Each visits every slot in schema order.
func (r *Record) Each(fn func(i int, it schema.Item, v int16)) {
	for i, v := range r.vals {
		fn(i, r.table.At(i), v)
	}
}

// Snapshot returns a copy of all slots in schema order.
func (r *Record) Snapshot() []int16 {
	out := make([]int16, len(r.vals))
	copy(out, r.vals)
	return out
}

// Restore overwrites every slot from vals.
// vals must hold exactly Len() values.
func (r *Record) Restore(vals []int16) bool {
	if len(vals) != len(r.vals) {
		return false
	}
	copy(r.vals, vals)
	return true
}
