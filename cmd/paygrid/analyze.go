package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/paygrid/payoff"
	"github.com/katalvlaran/paygrid/transform"
)

var analyzeFormat string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Report best responses, equilibrium-supporting cells and the Pareto frontier",
	Long: `Reads one matrix and reports, using the first two payoffs of every cell:

  rowBestResponses     best row for each column (row player)
  columnBestResponses  best column for each row (column player)
  equilibriumSupport   cells the nash transform boosts
  paretoFrontier       cells no other cell dominates`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "yaml", "Output format: yaml or json")
}

// outcome names one cell of a matrix by its strategy labels.
type outcome struct {
	Row     string    `json:"row" yaml:"row"`
	Column  string    `json:"column" yaml:"column"`
	Payoffs []float64 `json:"payoffs" yaml:"payoffs,flow"`
}

type analysis struct {
	ID                  string    `json:"id" yaml:"id"`
	Name                string    `json:"name" yaml:"name"`
	RowBestResponses    []string  `json:"rowBestResponses" yaml:"rowBestResponses,flow"`
	ColumnBestResponses []string  `json:"columnBestResponses" yaml:"columnBestResponses,flow"`
	EquilibriumSupport  []outcome `json:"equilibriumSupport" yaml:"equilibriumSupport"`
	ParetoFrontier      []outcome `json:"paretoFrontier" yaml:"paretoFrontier"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	format, err := payoff.ParseFormat(analyzeFormat)
	if err != nil {
		return err
	}
	gen, err := cfg.IDGenerator()
	if err != nil {
		return err
	}
	m, err := readMatrix(cmd, args, gen)
	if err != nil {
		return err
	}
	return writeValue(cmd.OutOrStdout(), format, analyze(m))
}

func analyze(m payoff.Matrix) analysis {
	rows, cols := m.Strategies[0], m.Strategies[1]
	cell := func(i, j int) outcome {
		return outcome{Row: rows[i], Column: cols[j], Payoffs: m.Payoffs[i][j]}
	}

	rowBest, colBest := transform.BestResponses(m.Payoffs)
	a := analysis{
		ID:                  m.ID,
		Name:                m.Name,
		RowBestResponses:    make([]string, len(rowBest)),
		ColumnBestResponses: make([]string, len(colBest)),
	}
	for j, r := range rowBest {
		a.RowBestResponses[j] = rows[r]
	}
	for i, c := range colBest {
		a.ColumnBestResponses[i] = cols[c]
	}
	for i := range rows {
		for j := range cols {
			if transform.SupportsEquilibrium(rowBest, colBest, i, j) {
				a.EquilibriumSupport = append(a.EquilibriumSupport, cell(i, j))
			}
		}
	}
	for _, c := range transform.ParetoFrontier(m.Payoffs) {
		a.ParetoFrontier = append(a.ParetoFrontier, cell(c.Row, c.Col))
	}
	return a
}
