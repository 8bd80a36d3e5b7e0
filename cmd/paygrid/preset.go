package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/paygrid/payoff"
	"github.com/katalvlaran/paygrid/scenario"
)

const presetRandom = "random"

var (
	presetFormat     string
	presetName       string
	presetPlayers    []string
	presetStrategies []string
	presetSeed       int64
)

var presetCmd = &cobra.Command{
	Use:   "preset [name]",
	Short: "Print a canned or random matrix",
	Long: `Without a name, lists the canned scenarios. With a name, prints that
scenario's matrix. The name "random" builds a square matrix with integer
payoffs 0-9 over --strategies for --players.

Examples:
  paygrid preset
  paygrid preset dark-forest --format json
  paygrid preset random --players Alice,Bob --strategies Left,Right --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreset,
}

func init() {
	presetCmd.Flags().StringVarP(&presetFormat, "format", "f", "yaml", "Output format: yaml or json")
	presetCmd.Flags().StringVar(&presetName, "name", "Random Game", "Matrix name (random only)")
	presetCmd.Flags().StringSliceVar(&presetPlayers, "players", []string{"Player 1", "Player 2"}, "Player names (random only)")
	presetCmd.Flags().StringSliceVar(&presetStrategies, "strategies", []string{"Strategy A", "Strategy B"}, "Strategies shared by both players (random only)")
	presetCmd.Flags().Int64Var(&presetSeed, "seed", 0, "Random seed; 0 means 1 (random only)")
}

func runPreset(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if len(args) == 0 {
		for _, n := range scenario.Names() {
			fmt.Fprintln(out, n)
		}
		fmt.Fprintln(out, presetRandom)
		return nil
	}

	format, err := payoff.ParseFormat(presetFormat)
	if err != nil {
		return err
	}
	gen, err := cfg.IDGenerator()
	if err != nil {
		return err
	}

	var m payoff.Matrix
	if args[0] == presetRandom {
		seed := presetSeed
		if seed == 0 {
			seed = 1
		}
		m, err = scenario.Random(rand.New(rand.NewSource(seed)), presetName, presetPlayers, presetStrategies, gen)
	} else {
		m, err = scenario.ByName(args[0], gen)
	}
	if err != nil {
		return err
	}
	return payoff.Encode(out, format, m)
}
