// internal/companion/layout.go
package companion

// Companion register block layout.
// These values define the protocol shared with the embedded controller
// and MUST NOT be configurable.

// ---- HEADER ----

// SlotTagStart is the first register of the ASCII tag.
const SlotTagStart = 0

// SlotTagSlots is the number of registers holding the tag (two ASCII bytes each).
const SlotTagSlots = 2

// SlotCount holds the number of parameter slots that follow.
const SlotCount = 2

// ---- VALUES ----

// SlotValuesStart is the register of parameter slot 0.
// Parameter slot i lives at SlotValuesStart + i.
const SlotValuesStart = 3

// ---- LIMITS ----

// MaxBlockRegisters is the largest block a single Modbus read/write carries.
// Write Multiple Registers (FC16) allows at most 123.
const MaxBlockRegisters = 123

// BlockLen is the register count for a schema with count slots.
func BlockLen(count int) int {
	return SlotValuesStart + count
}
