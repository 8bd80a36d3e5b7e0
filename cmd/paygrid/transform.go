package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/paygrid/payoff"
	"github.com/katalvlaran/paygrid/transform"
	"github.com/katalvlaran/paygrid/workbench"
)

var (
	transformKinds      []string
	transformIterations int
	transformChain      bool
	transformAll        bool
	transformFormat     string
)

var transformCmd = &cobra.Command{
	Use:   "transform [file]",
	Short: "Derive new matrices from a matrix",
	Long: `Reads one matrix (YAML or JSON, stdin when no file is given) and applies
each --kind to it. Every result records the matrix it was derived from in
connectedTo. With --chain each kind is applied to the previous result instead.

Without --kind the evolutionary transform is used.

Examples:
  paygrid preset prisoners-dilemma | paygrid transform --kind nash
  paygrid transform game.yaml --kind evolutionary --iterations 5 --kind pareto --chain --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTransform,
}

func init() {
	transformCmd.Flags().StringSliceVarP(&transformKinds, "kind", "k", nil, "Transform kind: evolutionary, nash, pareto, multi-universe (repeatable)")
	transformCmd.Flags().IntVarP(&transformIterations, "iterations", "n", -1, "Evolutionary pass count (default from config)")
	transformCmd.Flags().BoolVar(&transformChain, "chain", false, "Apply each kind to the previous result")
	transformCmd.Flags().BoolVar(&transformAll, "all", false, "Print the source and every result")
	transformCmd.Flags().StringVarP(&transformFormat, "format", "f", "yaml", "Output format: yaml or json")
}

func runTransform(cmd *cobra.Command, args []string) error {
	format, err := payoff.ParseFormat(transformFormat)
	if err != nil {
		return err
	}
	kinds, err := parseKinds(transformKinds)
	if err != nil {
		return err
	}

	tc := *cfg
	if transformIterations >= 0 {
		tc.Transform.Iterations = transformIterations
	}
	gen, err := tc.IDGenerator()
	if err != nil {
		return err
	}
	engine, err := tc.NewEngine(logger, gen)
	if err != nil {
		return err
	}

	src, err := readMatrix(cmd, args, gen)
	if err != nil {
		return err
	}
	wb := workbench.New(engine, workbench.WithLogger(logger))
	if err = wb.Add(src); err != nil {
		return err
	}

	var produced []payoff.Matrix
	from := src.ID
	for _, kind := range kinds {
		outs, err := wb.Connect(from, kind)
		if err != nil {
			return err
		}
		produced = append(produced, outs...)
		if transformChain {
			from = outs[0].ID
		}
	}
	logger.Info("transform finished",
		zap.String("source", src.ID),
		zap.Int("produced", len(produced)),
		zap.Int("workbench", wb.Len()),
	)

	if transformAll {
		produced = wb.Matrices()
	}
	return payoff.Encode(cmd.OutOrStdout(), format, produced...)
}

// parseKinds resolves kind names; none selects the evolutionary transform.
func parseKinds(names []string) ([]transform.Kind, error) {
	if len(names) == 0 {
		return []transform.Kind{transform.KindEvolutionary}, nil
	}
	kinds := make([]transform.Kind, len(names))
	for i, n := range names {
		k, err := transform.ParseKind(n)
		if err != nil {
			return nil, fmt.Errorf("--kind: %w", err)
		}
		kinds[i] = k
	}
	return kinds, nil
}
