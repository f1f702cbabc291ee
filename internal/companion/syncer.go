// internal/companion/syncer.go
package companion

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/tamzrod/drivecfg/internal/record"
)

// Client abstracts the Modbus operations the syncer needs.
// The syncer depends on geometry only.
type Client interface {
	ReadHoldingRegisters(unitID uint8, addr, qty uint16) ([]uint16, error) // FC 3
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error         // FC 16
}

// Config is the minimal runtime config the syncer needs.
type Config struct {
	UnitID      uint8
	BaseAddress uint16
}

// Syncer copies a whole parameter set to and from a companion controller.
// No retries. Each call is one request.
type Syncer struct {
	cfg Config
	cli Client
}

// New creates a syncer with immutable config.
func New(cfg Config, cli Client) (*Syncer, error) {
	if cli == nil {
		return nil, errors.New("companion: client required")
	}
	return &Syncer{cfg: cfg, cli: cli}, nil
}

// Push writes the full block for rec in a single request.
func (s *Syncer) Push(rec *record.Record) error {
	regs := Encode(rec)
	if err := s.checkSpan(len(regs)); err != nil {
		return err
	}

	if err := s.cli.WriteRegisters(s.cfg.UnitID, s.cfg.BaseAddress, regs); err != nil {
		return fmt.Errorf("companion: push unit=%d addr=%d: %w", s.cfg.UnitID, s.cfg.BaseAddress, err)
	}

	log.Debug().
		Uint8("unit", s.cfg.UnitID).
		Uint16("addr", s.cfg.BaseAddress).
		Int("regs", len(regs)).
		Msg("companion block pushed")
	return nil
}

// Pull reads the full block and applies it to rec by position.
// All-or-nothing: any failure leaves rec unchanged.
func (s *Syncer) Pull(rec *record.Record) error {
	n := BlockLen(rec.Len())
	if err := s.checkSpan(n); err != nil {
		return err
	}

	regs, err := s.cli.ReadHoldingRegisters(s.cfg.UnitID, s.cfg.BaseAddress, uint16(n))
	if err != nil {
		return fmt.Errorf("companion: pull unit=%d addr=%d: %w", s.cfg.UnitID, s.cfg.BaseAddress, err)
	}
	if err := Decode(regs, rec); err != nil {
		return err
	}

	log.Debug().
		Uint8("unit", s.cfg.UnitID).
		Uint16("addr", s.cfg.BaseAddress).
		Int("regs", len(regs)).
		Msg("companion block pulled")
	return nil
}

// checkSpan rejects blocks that need more than one request
// or run past the end of the register address space.
func (s *Syncer) checkSpan(n int) error {
	if n > MaxBlockRegisters {
		return fmt.Errorf("%w: %d registers", ErrBlockTooLarge, n)
	}
	if int(s.cfg.BaseAddress)+n > 0x10000 {
		return fmt.Errorf("companion: block of %d registers at %d overruns address space", n, s.cfg.BaseAddress)
	}
	return nil
}
