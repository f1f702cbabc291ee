// internal/companion/builder.go
package companion

import (
	"time"

	cmodbus "github.com/tamzrod/drivecfg/internal/companion/modbus"
	cfg "github.com/tamzrod/drivecfg/internal/config"
)

// Build constructs a Syncer and wires the Modbus client lifecycle.
// The returned closer releases the TCP connection.
func Build(c cfg.CompanionConfig) (*Syncer, func() error, error) {
	client, err := cmodbus.NewEndpointClient(cmodbus.Config{
		Endpoint: c.Endpoint,
		Timeout:  time.Duration(c.TimeoutMs) * time.Millisecond,
	})
	if err != nil {
		return nil, nil, err
	}

	s, err := New(Config{
		UnitID:      c.UnitID,
		BaseAddress: c.BaseAddress,
	}, client)
	if err != nil {
		_ = client.Close()
		return nil, nil, err
	}

	return s, client.Close, nil
}
