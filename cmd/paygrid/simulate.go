package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/paygrid/payoff"
	"github.com/katalvlaran/paygrid/universe"
)

const formatText = "text"

var (
	simSeed          int64
	simGenerations   int
	simUniverses     int
	simCivilizations int
	simSwitch        int
	simFormat        string
	simEmitMatrices  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the multi-universe civilization simulation",
	Long: `Evolves civilizations choosing Hide, Signal or Cooperate in several
independent universes. Each universe switches from the dark-forest regime to
post-scarcity at --post-scarcity-gen.

Output is a per-generation summary (text), the full state history (yaml, json),
or with --emit-matrices the final payoff table of every universe as matrices
ready for "paygrid transform".`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	f := simulateCmd.Flags()
	f.Int64Var(&simSeed, "seed", 0, "Random seed; 0 selects the default seed")
	f.IntVar(&simGenerations, "generations", 0, "Generations to simulate")
	f.IntVar(&simUniverses, "universes", 0, "Number of universes")
	f.IntVar(&simCivilizations, "civilizations", 0, "Civilizations per universe")
	f.IntVar(&simSwitch, "post-scarcity-gen", 0, "Generation that switches to post-scarcity")
	f.StringVarP(&simFormat, "format", "f", formatText, "Output format: text, yaml or json")
	f.BoolVar(&simEmitMatrices, "emit-matrices", false, "Print the final universes as payoff matrices")
}

// simulationConfig overlays explicitly set flags on the configured simulation.
func simulationConfig(cmd *cobra.Command) universe.Config {
	sc := cfg.Simulation
	flags := cmd.Flags()
	if flags.Changed("seed") {
		sc.Seed = simSeed
	}
	if flags.Changed("generations") {
		sc.Generations = simGenerations
	}
	if flags.Changed("universes") {
		sc.Universes = simUniverses
	}
	if flags.Changed("civilizations") {
		sc.Civilizations = simCivilizations
	}
	if flags.Changed("post-scarcity-gen") {
		sc.PostScarcityGen = simSwitch
	}
	return sc
}

func runSimulate(cmd *cobra.Command, args []string) error {
	sim, err := universe.New(simulationConfig(cmd), universe.WithLogger(logger))
	if err != nil {
		return err
	}
	states, err := sim.Run(cmd.Context())
	if err != nil {
		return err
	}
	last := states[len(states)-1]
	logger.Info("simulation finished",
		zap.Int("generations", last.Generation),
		zap.Float64("cooperation", last.CooperationLevel),
		zap.Stringer("dominant", last.Dominant),
	)

	out := cmd.OutOrStdout()
	if simEmitMatrices {
		format := payoff.FormatYAML
		if simFormat != formatText {
			if format, err = payoff.ParseFormat(simFormat); err != nil {
				return err
			}
		}
		gen, err := cfg.IDGenerator()
		if err != nil {
			return err
		}
		ms := make([]payoff.Matrix, len(last.Universes))
		for i, u := range last.Universes {
			if ms[i], err = u.Matrix(gen); err != nil {
				return err
			}
		}
		return payoff.Encode(out, format, ms...)
	}

	if simFormat != formatText {
		format, err := payoff.ParseFormat(simFormat)
		if err != nil {
			return err
		}
		return writeValue(out, format, states)
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GEN\tCOOPERATION\tDOMINANT\tREGIMES")
	for _, st := range states {
		regimes := make([]string, len(st.Universes))
		for i, u := range st.Universes {
			regimes[i] = "dark-forest"
			if u.PostScarcity {
				regimes[i] = "post-scarcity"
			}
		}
		fmt.Fprintf(tw, "%d\t%.1f%%\t%s\t%s\n", st.Generation, st.CooperationLevel, st.Dominant, strings.Join(regimes, ","))
	}
	return tw.Flush()
}
