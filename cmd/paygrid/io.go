package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/paygrid/ids"
	"github.com/katalvlaran/paygrid/payoff"
)

// readMatrix decodes the matrix named by args[0], or stdin for no argument or "-".
// A matrix without an id gets one from g.
func readMatrix(cmd *cobra.Command, args []string, g ids.Generator) (payoff.Matrix, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return payoff.Matrix{}, err
		}
		defer f.Close()
		r, name = f, args[0]
	}
	m, err := payoff.Decode(r)
	if err != nil {
		return payoff.Matrix{}, fmt.Errorf("%s: %w", name, err)
	}
	if m.ID == "" {
		m.ID = g.NewID()
	}
	return m, nil
}

// writeValue encodes a report value in the requested format.
func writeValue(w io.Writer, f payoff.Format, v any) error {
	switch f {
	case payoff.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case payoff.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return fmt.Errorf("%q: %w", f, payoff.ErrUnknownFormat)
}
