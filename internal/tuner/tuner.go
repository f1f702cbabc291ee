// internal/tuner/tuner.go
package tuner

import (
	"fmt"

	"github.com/tamzrod/drivecfg/internal/record"
	"github.com/tamzrod/drivecfg/internal/schema"
)

// Modifier selects the adjustment step while a shoulder button is held.
type Modifier int

const (
	ModNone Modifier = iota // 0.01
	ModX                    // 0.10
	ModY                    // 1.00
)

// Step is the scaled increment for m.
func (m Modifier) Step() int16 {
	switch m {
	case ModX:
		return 10
	case ModY:
		return 100
	default:
		return 1
	}
}

// Cursor walks and edits a record from a d-pad.
// Selection wraps at both ends. Values wrap at the int16 limits.
type Cursor struct {
	rec  *record.Record
	item int
}

func NewCursor(rec *record.Record) *Cursor {
	return &Cursor{rec: rec}
}

// Item is the selected slot.
func (c *Cursor) Item() int { return c.item }

// Up selects the previous item.
func (c *Cursor) Up() {
	if c.rec.Len() == 0 {
		return
	}
	c.item--
	if c.item < 0 {
		c.item = c.rec.Len() - 1
	}
}

// Down selects the next item.
func (c *Cursor) Down() {
	if c.rec.Len() == 0 {
		return
	}
	c.item++
	if c.item >= c.rec.Len() {
		c.item = 0
	}
}

// Left decreases the selected value.
func (c *Cursor) Left(m Modifier) {
	if c.rec.Len() == 0 {
		return
	}
	c.rec.SetAt(c.item, c.rec.At(c.item)-m.Step())
}

// Right increases the selected value.
func (c *Cursor) Right(m Modifier) {
	if c.rec.Len() == 0 {
		return
	}
	c.rec.SetAt(c.item, c.rec.At(c.item)+m.Step())
}

// Press applies one d-pad direction: 'U', 'D', 'L' or 'R'.
// It reports false for any other byte.
func (c *Cursor) Press(dir byte, m Modifier) bool {
	switch dir {
	case 'U':
		c.Up()
	case 'D':
		c.Down()
	case 'L':
		c.Left(m)
	case 'R':
		c.Right(m)
	default:
		return false
	}
	return true
}

// Line renders the selected item as "<display> <value>".
func (c *Cursor) Line() string {
	if c.rec.Len() == 0 {
		return ""
	}
	it := c.rec.Table().At(c.item)
	return fmt.Sprintf("%s %s", it.Display, schema.FormatScaled(c.rec.At(c.item)))
}
