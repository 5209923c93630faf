package registry

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"emoji-city/internal/entity"

	"gopkg.in/yaml.v3"
)

// Snapshot is a value capture of registry state. Render handles are not
// part of it; entities are recorded by kind and position only.
type Snapshot struct {
	Resources int      `json:"resources" yaml:"resources"`
	Counts    Counts   `json:"counts" yaml:"counts"`
	Entities  []Record `json:"entities" yaml:"entities"`
}

// Record is one active entity inside a Snapshot.
type Record struct {
	Kind entity.Kind `json:"kind" yaml:"kind"`
	X    float64     `json:"x" yaml:"x"`
	Y    float64     `json:"y" yaml:"y"`
}

// Clone returns a copy that shares no memory with s.
func (s Snapshot) Clone() Snapshot {
	s.Entities = slices.Clone(s.Entities)
	return s
}

// Format selects the encoding used for snapshots.
type Format uint8

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// ParseFormat accepts "json", "yaml" or "yml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("unknown snapshot format %q", s)
}

func (f Format) MarshalText() ([]byte, error) { return []byte(f.String()), nil }

func (f *Format) UnmarshalText(b []byte) error {
	parsed, err := ParseFormat(string(b))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Encode serializes snap in the given format.
func Encode(snap Snapshot, f Format) ([]byte, error) {
	if snap.Entities == nil {
		snap.Entities = []Record{}
	}
	switch f {
	case FormatJSON:
		data, err := json.Marshal(snap)
		if err != nil {
			return nil, fmt.Errorf("encode snapshot json: %w", err)
		}
		return data, nil
	case FormatYAML:
		data, err := yaml.Marshal(snap)
		if err != nil {
			return nil, fmt.Errorf("encode snapshot yaml: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("encode snapshot: unsupported format %s", f)
}

// Decode parses a snapshot produced by Encode.
func Decode(data []byte, f Format) (Snapshot, error) {
	var snap Snapshot
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &snap); err != nil {
			return Snapshot{}, fmt.Errorf("decode snapshot json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &snap); err != nil {
			return Snapshot{}, fmt.Errorf("decode snapshot yaml: %w", err)
		}
	default:
		return Snapshot{}, fmt.Errorf("decode snapshot: unsupported format %s", f)
	}
	if snap.Resources < 0 {
		return Snapshot{}, fmt.Errorf("decode snapshot: negative resources %d", snap.Resources)
	}
	return snap, nil
}
