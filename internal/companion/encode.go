// internal/companion/encode.go
package companion

import (
	"errors"
	"fmt"

	"github.com/tamzrod/drivecfg/internal/record"
	"github.com/tamzrod/drivecfg/internal/wire"
)

var (
	ErrBadTag        = errors.New("companion: bad block tag")
	ErrCountMismatch = errors.New("companion: slot count does not match schema")
	ErrBlockTooLarge = errors.New("companion: block exceeds one modbus request")
)

// Encode converts a record into a full register block.
// Layout is protocol-locked.
// No IO. No side effects.
func Encode(rec *record.Record) []uint16 {
	regs := make([]uint16, BlockLen(rec.Len()))

	copy(regs[SlotTagStart:SlotTagStart+SlotTagSlots], tagRegs())
	regs[SlotCount] = uint16(rec.Len())

	for i := 0; i < rec.Len(); i++ {
		regs[SlotValuesStart+i] = uint16(rec.At(i))
	}
	return regs
}

// Decode maps a register block onto rec by slot position.
// All-or-nothing: on any error rec is left unchanged.
func Decode(regs []uint16, rec *record.Record) error {
	if len(regs) < SlotValuesStart {
		return fmt.Errorf("%w: %d registers", ErrCountMismatch, len(regs))
	}

	want := tagRegs()
	for i := 0; i < SlotTagSlots; i++ {
		if regs[SlotTagStart+i] != want[i] {
			return fmt.Errorf("%w: %04x%04x", ErrBadTag, regs[SlotTagStart], regs[SlotTagStart+1])
		}
	}

	count := int(regs[SlotCount])
	if count != rec.Len() || len(regs) < BlockLen(count) {
		return fmt.Errorf("%w: block has %d, record has %d", ErrCountMismatch, count, rec.Len())
	}

	for i := 0; i < count; i++ {
		rec.SetAt(i, int16(regs[SlotValuesStart+i]))
	}
	return nil
}

// tagRegs packs the 4-byte frame tag into 2 registers.
// Each register stores two ASCII bytes in big-endian order.
func tagRegs() []uint16 {
	b := []byte(wire.Tag)
	out := make([]uint16, SlotTagSlots)
	for i := 0; i < SlotTagSlots; i++ {
		out[i] = uint16(b[2*i])<<8 | uint16(b[2*i+1])
	}
	return out
}
