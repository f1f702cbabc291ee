// internal/driverconfig/driverconfig.go
package driverconfig

import (
	"github.com/tamzrod/drivecfg/internal/record"
	"github.com/tamzrod/drivecfg/internal/schema"
	"github.com/tamzrod/drivecfg/internal/textcodec"
	"github.com/tamzrod/drivecfg/internal/wire"
)

// DriverConfig is the drive controller's parameter set bound to its tuning file.
type DriverConfig struct {
	*record.Record
	path string
}

// New returns a default-initialized config persisted at textcodec.DefaultPath.
func New() *DriverConfig {
	return NewAt(textcodec.DefaultPath)
}

// NewAt returns a default-initialized config persisted at path.
func NewAt(path string) *DriverConfig {
	if path == "" {
		path = textcodec.DefaultPath
	}
	return &DriverConfig{
		Record: record.New(schema.Drive),
		path:   path,
	}
}

// Path is the tuning file location.
func (c *DriverConfig) Path() string { return c.path }

// Load patches the config from its tuning file.
func (c *DriverConfig) Load() (textcodec.Result, error) {
	return textcodec.Load(c.Record, c.path)
}

// Save writes the config to its tuning file.
func (c *DriverConfig) Save() error {
	return textcodec.Save(c.Record, c.path)
}

// SerializedSize is the binary frame length.
func (c *DriverConfig) SerializedSize() int {
	return wire.SerializedSize(c.Record)
}

// Serialize writes the binary frame into buf. See wire.Serialize.
func (c *DriverConfig) Serialize(buf []byte) (int, error) {
	return wire.Serialize(c.Record, buf)
}

// Names is the display-name table in slot order.
func Names() []string { return schema.Drive.Displays() }

// NumItems is the number of parameters.
func NumItems() int { return schema.Drive.Len() }
