// pkg/export/export.go
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/rivelink/pkg/plan"
)

// Format is an output encoding
type Format string

const (
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
	FormatTOML  Format = "toml"
	FormatFlags Format = "flags"
)

// Formats lists every supported format
var Formats = []Format{FormatYAML, FormatJSON, FormatTOML, FormatFlags}

// ParseFormat validates a format name
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (want yaml, json, toml or flags)", s)
}

// Matrix is the document written for several plans
type Matrix struct {
	Plans []plan.Snapshot `json:"plans" yaml:"plans" toml:"plans"`
}

// Write encodes one plan
func Write(w io.Writer, p *plan.BuildPlan, f Format) error {
	if f == FormatFlags {
		return writeFlags(w, FlagsFor(p))
	}
	return encode(w, p.Snapshot(), f)
}

// WriteMatrix encodes several plans as one document
func WriteMatrix(w io.Writer, plans []*plan.BuildPlan, f Format) error {
	if f == FormatFlags {
		for _, p := range plans {
			if _, err := fmt.Fprintf(w, "# %s\n", p.Target()); err != nil {
				return err
			}
			if err := writeFlags(w, FlagsFor(p)); err != nil {
				return err
			}
		}
		return nil
	}

	m := Matrix{Plans: make([]plan.Snapshot, len(plans))}
	for i, p := range plans {
		m.Plans[i] = p.Snapshot()
	}
	return encode(w, m, f)
}

func encode(w io.Writer, v any, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(v); err != nil {
			return fmt.Errorf("encoding toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}
