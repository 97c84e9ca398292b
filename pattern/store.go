package pattern

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrUnsupportedFormat = errors.New("unsupported pattern format")

// Format is the on-disk encoding of a pattern file
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// fileState is the persisted form. Keep it flat: new fields must be optional.
type fileState struct {
	Strokes []Stroke `json:"strokes" yaml:"strokes"`
}

// FormatFor picks the encoding from the file extension. Anything that is not
// .yaml or .yml is JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Marshal encodes p in the given format
func Marshal(p *Pattern, f Format) ([]byte, error) {
	st := fileState{Strokes: p.Strokes()}
	switch f {
	case FormatJSON:
		data, err := json.MarshalIndent(st, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(st)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Unmarshal decodes a pattern. A missing or null stroke list is a zero
// length pattern.
func Unmarshal(data []byte, f Format) (*Pattern, error) {
	var st fileState
	switch f {
	case FormatJSON:
		if err := json.Unmarshal(data, &st); err != nil {
			return nil, err
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &st); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return New(st.Strokes...), nil
}

// Save writes p to path, creating parent directories as needed
func Save(p *Pattern, path string) error {
	data, err := Marshal(p, FormatFor(path))
	if err != nil {
		return fmt.Errorf("encode pattern: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create pattern dir: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write pattern: %w", err)
	}
	return nil
}

// Load reads a pattern from path
func Load(path string) (*Pattern, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}

	p, err := Unmarshal(data, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("decode pattern %s: %w", path, err)
	}
	return p, nil
}
