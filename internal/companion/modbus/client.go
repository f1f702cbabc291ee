// internal/companion/modbus/client.go
package modbus

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/goburrow/modbus"
)

// Config describes one companion controller endpoint.
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// EndpointClient is a single TCP connection to one companion controller.
// Requests are serialized: the unit id lives on the shared handler.
type EndpointClient struct {
	mu      sync.Mutex
	handler *modbus.TCPClientHandler
	client  modbus.Client
}

// NewEndpointClient connects to cfg.Endpoint.
func NewEndpointClient(cfg Config) (*EndpointClient, error) {
	h, err := dial(cfg)
	if err != nil {
		return nil, err
	}
	return &EndpointClient{handler: h, client: modbus.NewClient(h)}, nil
}

func dial(cfg Config) (*modbus.TCPClientHandler, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("companion modbus: endpoint required")
	}

	h := modbus.NewTCPClientHandler(cfg.Endpoint)
	h.Timeout = cfg.Timeout
	if err := h.Connect(); err != nil {
		return nil, fmt.Errorf("companion modbus: connect %s: %w", cfg.Endpoint, err)
	}
	return h, nil
}

// Close releases the connection.
func (c *EndpointClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler.Close()
}

// onUnit runs fn with the connection held and addressed to unitID.
func (c *EndpointClient) onUnit(unitID uint8, fn func(modbus.Client) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.handler.SlaveId = unitID
	return fn(c.client)
}

// ReadHoldingRegisters implements companion.Client (FC 3).
func (c *EndpointClient) ReadHoldingRegisters(unitID uint8, addr, qty uint16) ([]uint16, error) {
	var regs []uint16
	err := c.onUnit(unitID, func(bus modbus.Client) error {
		raw, err := bus.ReadHoldingRegisters(addr, qty)
		if err != nil {
			return fmt.Errorf("companion modbus: read unit=%d addr=%d qty=%d: %w", unitID, addr, qty, err)
		}
		if len(raw) != int(qty)*2 {
			return fmt.Errorf("companion modbus: got %d bytes for %d registers", len(raw), qty)
		}
		regs = UnpackRegisters(raw)
		return nil
	})
	return regs, err
}

// WriteRegisters implements companion.Client (FC 16).
func (c *EndpointClient) WriteRegisters(unitID uint8, addr uint16, regs []uint16) error {
	return c.onUnit(unitID, func(bus modbus.Client) error {
		if _, err := bus.WriteMultipleRegisters(addr, uint16(len(regs)), PackRegisters(regs)); err != nil {
			return fmt.Errorf("companion modbus: write unit=%d addr=%d qty=%d: %w", unitID, addr, len(regs), err)
		}
		return nil
	})
}

// PackRegisters lays registers out in Modbus memory order (big-endian).
func PackRegisters(regs []uint16) []byte {
	out := make([]byte, 2*len(regs))
	for i, r := range regs {
		binary.BigEndian.PutUint16(out[2*i:], r)
	}
	return out
}

// UnpackRegisters is the inverse of PackRegisters. A trailing odd byte is dropped.
func UnpackRegisters(data []byte) []uint16 {
	out := make([]uint16, len(data)/2)
	for i := range out {
		out[i] = binary.BigEndian.Uint16(data[2*i:])
	}
	return out
}
