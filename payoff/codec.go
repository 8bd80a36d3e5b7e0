// SPDX-License-Identifier: MIT

package payoff

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the text encoding used by Encode.
type Format string

const (
	// FormatYAML encodes one YAML document per matrix.
	FormatYAML Format = "yaml"
	// FormatJSON encodes a single object, or an array for several matrices.
	FormatJSON Format = "json"
)

// ParseFormat resolves a case-insensitive format name ("yaml", "yml", "json").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
}

// Decode reads one matrix from r and validates it. YAML and JSON are both
// accepted; unknown fields are rejected.
func Decode(r io.Reader) (Matrix, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Matrix
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Matrix{}, matrixErrorf("Decode", ErrEmptyGrid)
		}
		return Matrix{}, fmt.Errorf("Matrix.Decode: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Matrix{}, err
	}
	return m, nil
}

// Encode writes ms to w in the requested format.
func Encode(w io.Writer, f Format, ms ...Matrix) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		for _, m := range ms {
			if err := enc.Encode(m); err != nil {
				return fmt.Errorf("Matrix.Encode: %w", err)
			}
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		var v any = ms
		if len(ms) == 1 {
			v = ms[0]
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("Matrix.Encode: %w", err)
		}
		return nil
	}
	return fmt.Errorf("Matrix.Encode(%q): %w", f, ErrUnknownFormat)
}
