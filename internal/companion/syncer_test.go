// internal/companion/syncer_test.go
package companion

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tamzrod/drivecfg/internal/record"
	"github.com/tamzrod/drivecfg/internal/schema"
)

// ---- fake client: a flat holding register space ----

type fakeClient struct {
	mem      [0x10000]uint16
	writes   int
	lastUnit uint8
	failRead error
}

func (f *fakeClient) ReadHoldingRegisters(unitID uint8, addr, qty uint16) ([]uint16, error) {
	if f.failRead != nil {
		return nil, f.failRead
	}
	f.lastUnit = unitID
	out := make([]uint16, qty)
	copy(out, f.mem[addr:int(addr)+int(qty)])
	return out, nil
}

func (f *fakeClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	f.writes++
	f.lastUnit = unitID
	copy(f.mem[addr:], regs)
	return nil
}

// ---- tests ----

func TestEncode_Layout(t *testing.T) {
	rec := record.New(schema.Drive)
	rec.Set("servo_min", -100)

	regs := Encode(rec)
	require.Len(t, regs, BlockLen(schema.Drive.Len()))
	assert.Equal(t, uint16(0x6366), regs[0]) // "cf"
	assert.Equal(t, uint16(0x6731), regs[1]) // "g1"
	assert.Equal(t, uint16(13), regs[SlotCount])
	assert.Equal(t, uint16(300), regs[SlotValuesStart+schema.DriveSpeedLimit])
	assert.Equal(t, uint16(0xff9c), regs[SlotValuesStart+schema.DriveServoMin])
}

func TestPushPull_RoundTrip(t *testing.T) {
	cli := &fakeClient{}
	s, err := New(Config{UnitID: 7, BaseAddress: 40}, cli)
	require.NoError(t, err)

	src := record.New(schema.Drive)
	src.Set("throttle_cap", 55)
	src.Set("servo_offset", -3)
	require.NoError(t, s.Push(src))
	assert.Equal(t, 1, cli.writes, "whole block in one request")
	assert.Equal(t, uint8(7), cli.lastUnit)
	assert.Equal(t, uint16(0x6366), cli.mem[40])

	dst := record.New(schema.Drive)
	require.NoError(t, s.Pull(dst))
	assert.Equal(t, src.Snapshot(), dst.Snapshot())
}

func TestPull_RejectsWithoutTouchingRecord(t *testing.T) {
	cases := map[string]func(*fakeClient){
		"blank memory": func(*fakeClient) {},
		"count mismatch": func(f *fakeClient) {
			copy(f.mem[:], Encode(record.New(schema.Drive)))
			f.mem[SlotCount] = 4
		},
		"read error": func(f *fakeClient) {
			f.failRead = errors.New("timeout")
		},
	}

	for name, setup := range cases {
		t.Run(name, func(t *testing.T) {
			cli := &fakeClient{}
			setup(cli)
			s, err := New(Config{UnitID: 1}, cli)
			require.NoError(t, err)

			rec := record.New(schema.Drive)
			rec.Set("speed_limit", 999)
			before := rec.Snapshot()

			require.Error(t, s.Pull(rec))
			assert.Equal(t, before, rec.Snapshot())
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	rec := record.New(schema.Drive)
	regs := Encode(rec)

	require.ErrorIs(t, Decode(regs[:2], rec), ErrCountMismatch)

	bad := append([]uint16(nil), regs...)
	bad[1] = 0x6732
	require.ErrorIs(t, Decode(bad, rec), ErrBadTag)

	require.ErrorIs(t, Decode(regs[:len(regs)-1], rec), ErrCountMismatch)
	require.NoError(t, Decode(regs, rec))
}

func TestPush_AddressOverrun(t *testing.T) {
	s, err := New(Config{UnitID: 1, BaseAddress: 0xFFF8}, &fakeClient{})
	require.NoError(t, err)
	require.ErrorContains(t, s.Push(record.New(schema.Drive)), "overruns")
}

func TestPush_BlockTooLarge(t *testing.T) {
	items := make([]schema.Item, MaxBlockRegisters)
	for i := range items {
		items[i] = schema.Item{Field: string(rune('a'+i%26)) + string(rune('a'+i/26))}
	}
	rec := record.New(schema.NewTable(items...))

	s, err := New(Config{UnitID: 1}, &fakeClient{})
	require.NoError(t, err)
	require.ErrorIs(t, s.Push(rec), ErrBlockTooLarge)
	require.ErrorIs(t, s.Pull(rec), ErrBlockTooLarge)
}

func TestNew_RequiresClient(t *testing.T) {
	_, err := New(Config{}, nil)
	require.Error(t, err)
}
