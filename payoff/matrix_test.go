// SPDX-License-Identifier: MIT

package payoff_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paygrid/ids"
	"github.com/katalvlaran/paygrid/payoff"
)

var (
	twoPlayers = []string{"P1", "P2"}
	coopDefect = [][]string{{"Cooperate", "Defect"}, {"Cooperate", "Defect"}}
)

func dilemmaGrid() payoff.Grid {
	return payoff.Grid{
		{{3, 3}, {0, 5}},
		{{5, 0}, {1, 1}},
	}
}

func TestNew_Valid(t *testing.T) {
	t.Parallel()

	g := dilemmaGrid()
	m, err := payoff.New("PD", twoPlayers, coopDefect, g,
		payoff.WithIDGenerator(ids.NewSequence("t")),
		payoff.WithDescription("classic"),
		payoff.WithSourcePrompt("prisoner"),
	)
	require.NoError(t, err)
	require.Equal(t, "t0", m.ID)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, "classic", m.Description)
	require.Equal(t, "prisoner", m.SourcePrompt)
	require.Nil(t, m.ConnectedTo)

	// New deep-copies its inputs.
	g[0][0][0] = 99
	require.Equal(t, 3.0, m.Payoffs[0][0][0])
}

func TestNew_DefaultID(t *testing.T) {
	prev := ids.SetDefault(ids.NewSequence("def"))
	t.Cleanup(func() { ids.SetDefault(prev) })

	m, err := payoff.New("PD", twoPlayers, coopDefect, dilemmaGrid())
	require.NoError(t, err)
	require.Equal(t, "def0", m.ID)
}

// TestValidate_Errors walks the invariant list in its documented priority.
func TestValidate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		players    []string
		strategies [][]string
		grid       payoff.Grid
		want       error
	}{
		{"OnePlayer", []string{"solo"}, coopDefect, dilemmaGrid(), payoff.ErrTooFewPlayers},
		{"NoRows", twoPlayers, [][]string{{}, {}}, payoff.Grid{}, payoff.ErrEmptyGrid},
		{"NoCols", twoPlayers, [][]string{{"A"}, {}}, payoff.Grid{{}}, payoff.ErrEmptyGrid},
		{"Ragged", twoPlayers, coopDefect, payoff.Grid{{{1, 1}, {2, 2}}, {{3, 3}}}, payoff.ErrNonRectangular},
		{"StrategyRows", twoPlayers, [][]string{{"A"}, {"C", "D"}}, dilemmaGrid(), payoff.ErrStrategyShape},
		{"StrategyDims", twoPlayers, [][]string{{"A", "B"}}, dilemmaGrid(), payoff.ErrStrategyShape},
		{"ShortCell", twoPlayers, coopDefect, payoff.Grid{{{3, 3}, {0}}, {{5, 0}, {1, 1}}}, payoff.ErrCellLength},
		{"LongCell", twoPlayers, coopDefect, payoff.Grid{{{3, 3}, {0, 5}}, {{5, 0}, {1, 1, 1}}}, payoff.ErrCellLength},
		{"NaN", twoPlayers, coopDefect, payoff.Grid{{{math.NaN(), 3}, {0, 5}}, {{5, 0}, {1, 1}}}, payoff.ErrNonFinite},
		{"Inf", twoPlayers, coopDefect, payoff.Grid{{{3, 3}, {0, 5}}, {{5, math.Inf(-1)}, {1, 1}}}, payoff.ErrNonFinite},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := payoff.New("bad", tc.players, tc.strategies, tc.grid, payoff.WithID("x"))
			require.Error(t, err)
			require.Truef(t, errors.Is(err, tc.want), "errors.Is(%v, %v)", err, tc.want)
			require.Truef(t, errors.Is(err, payoff.ErrMalformedMatrix), "not malformed: %v", err)
		})
	}
}

func TestValidate_CellContext(t *testing.T) {
	t.Parallel()

	m := payoff.Matrix{
		Players:    twoPlayers,
		Strategies: coopDefect,
		Payoffs:    payoff.Grid{{{3, 3}, {0, 5}}, {{5, 0}, {1}}},
	}
	err := m.Validate()
	require.Error(t, err)
	require.Contains(t, err.Error(), "Matrix.Validate(1,1)")
}

func TestClone_IsDeep(t *testing.T) {
	t.Parallel()

	m, err := payoff.New("PD", twoPlayers, coopDefect, dilemmaGrid(),
		payoff.WithID("a"), payoff.WithConnectedTo("root"))
	require.NoError(t, err)

	c := m.Clone()
	c.Payoffs[1][1][0] = 42
	c.Players[0] = "changed"
	c.Strategies[1][0] = "changed"
	c.ConnectedTo[0] = "changed"

	require.Equal(t, 1.0, m.Payoffs[1][1][0])
	require.Equal(t, "P1", m.Players[0])
	require.Equal(t, "Cooperate", m.Strategies[1][0])
	require.Equal(t, []string{"root"}, m.ConnectedTo)
}

func TestWithProvenance(t *testing.T) {
	t.Parallel()

	m, err := payoff.New("PD", twoPlayers, coopDefect, dilemmaGrid(), payoff.WithID("a"))
	require.NoError(t, err)

	linked := m.WithProvenance("src")
	require.Equal(t, []string{"src"}, linked.ConnectedTo)
	require.Nil(t, m.ConnectedTo)
	require.True(t, linked.Payoffs.Equal(m.Payoffs))
}

func TestGridEqual(t *testing.T) {
	t.Parallel()

	a := dilemmaGrid()
	require.True(t, a.Equal(a.Clone()))

	b := a.Clone()
	b[0][1][1] = 5.000001
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(a[:1]))
	require.Equal(t, 0, payoff.Grid{}.Cols())
}

func TestCodec_RoundTripYAML(t *testing.T) {
	t.Parallel()

	m, err := payoff.New("PD", twoPlayers, coopDefect, dilemmaGrid(),
		payoff.WithID("a"), payoff.WithConnectedTo("root"))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, payoff.Encode(&buf, payoff.FormatYAML, m))
	require.Contains(t, buf.String(), "connectedTo:")

	got, err := payoff.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, m.ID, got.ID)
	require.Equal(t, m.ConnectedTo, got.ConnectedTo)
	require.True(t, m.Payoffs.Equal(got.Payoffs))
}

func TestCodec_DecodeJSON(t *testing.T) {
	t.Parallel()

	src := `{"id":"j1","name":"PD","players":["P1","P2"],
"strategies":[["C","D"],["C","D"]],
"payoffs":[[[3,3],[0,5]],[[5,0],[1,1]]],"sourcePrompt":"prisoner"}`
	m, err := payoff.Decode(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, "j1", m.ID)
	require.Equal(t, "prisoner", m.SourcePrompt)
	require.Equal(t, 5.0, m.Payoffs[1][0][0])
}

func TestCodec_DecodeRejects(t *testing.T) {
	t.Parallel()

	_, err := payoff.Decode(strings.NewReader(`{"id":"x","name":"bad","players":["a","b"],"strategies":[["r"],["c"]],"payoffs":[[[1]]]}`))
	require.True(t, errors.Is(err, payoff.ErrCellLength), "got %v", err)

	_, err = payoff.Decode(strings.NewReader(`{"id":"x","unexpected":1}`))
	require.Error(t, err)

	_, err = payoff.Decode(strings.NewReader(""))
	require.True(t, errors.Is(err, payoff.ErrMalformedMatrix), "got %v", err)
}

func TestCodec_EncodeJSON(t *testing.T) {
	t.Parallel()

	a, err := payoff.New("A", twoPlayers, coopDefect, dilemmaGrid(), payoff.WithID("a"))
	require.NoError(t, err)
	b := a.WithProvenance("a")
	b.ID = "b"

	var one bytes.Buffer
	require.NoError(t, payoff.Encode(&one, payoff.FormatJSON, a))
	require.True(t, strings.HasPrefix(strings.TrimSpace(one.String()), "{"))
	require.NotContains(t, one.String(), "connectedTo")

	var many bytes.Buffer
	require.NoError(t, payoff.Encode(&many, payoff.FormatJSON, a, b))
	require.True(t, strings.HasPrefix(strings.TrimSpace(many.String()), "["))
	require.Contains(t, many.String(), `"connectedTo"`)

	require.True(t, errors.Is(payoff.Encode(&one, payoff.Format("xml"), a), payoff.ErrUnknownFormat))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := payoff.ParseFormat("YML")
	require.NoError(t, err)
	require.Equal(t, payoff.FormatYAML, f)

	f, err = payoff.ParseFormat(" json ")
	require.NoError(t, err)
	require.Equal(t, payoff.FormatJSON, f)

	_, err = payoff.ParseFormat("toml")
	require.True(t, errors.Is(err, payoff.ErrUnknownFormat))
}
