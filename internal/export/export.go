// internal/export/export.go
package export

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/tamzrod/drivecfg/internal/record"
	"github.com/tamzrod/drivecfg/internal/schema"
	"github.com/tamzrod/drivecfg/internal/wire"
)

// Entry is one parameter in schema order.
type Entry struct {
	Name    string `yaml:"name" toml:"name"`
	Display string `yaml:"display" toml:"display"`
	Value   string `yaml:"value" toml:"value"`
	Raw     int16  `yaml:"raw" toml:"raw"`
	Default int16  `yaml:"default" toml:"default"`
}

// Document is a read-only view of a record for tools and loggers.
type Document struct {
	Tag    string  `yaml:"tag" toml:"tag"`
	Params []Entry `yaml:"params" toml:"params"`
}

// Build snapshots rec into a Document.
func Build(rec *record.Record) Document {
	doc := Document{
		Tag:    wire.Tag,
		Params: make([]Entry, 0, rec.Len()),
	}
	rec.Each(func(_ int, it schema.Item, v int16) {
		doc.Params = append(doc.Params, Entry{
			Name:    it.Field,
			Display: it.Display,
			Value:   schema.FormatScaled(v),
			Raw:     v,
			Default: it.Default,
		})
	})
	return doc
}

// Write encodes rec to w as "yaml" or "toml".
func Write(w io.Writer, rec *record.Record, format string) error {
	doc := Build(rec)

	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("export: yaml: %w", err)
		}
		return enc.Close()
	case "toml":
		if err := toml.NewEncoder(w).Encode(doc); err != nil {
			return fmt.Errorf("export: toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("export: unknown format %q", format)
	}
}
