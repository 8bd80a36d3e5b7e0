package ids_test

import (
	"errors"
	"strconv"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paygrid/ids"
)

func TestSequence(t *testing.T) {
	t.Parallel()

	g := ids.NewSequence("m")
	require.Equal(t, "m0", g.NewID())
	require.Equal(t, "m1", g.NewID())
	require.Equal(t, "m2", g.NewID())
}

// TestSequence_Concurrent checks that concurrent callers never share an id.
func TestSequence_Concurrent(t *testing.T) {
	t.Parallel()

	const workers, perWorker = 8, 250
	g := ids.NewSequence("")
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := g.NewID()
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	require.Len(t, seen, workers*perWorker)
}

func TestTimeRandom_UniqueAndMonotonicPrefix(t *testing.T) {
	t.Parallel()

	g := ids.TimeRandom()
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		id := g.NewID()
		require.NotEmpty(t, id)
		for _, r := range id {
			ok := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z')
			require.Truef(t, ok, "unexpected rune %q in %q", r, id)
		}
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %q", id)
		seen[id] = struct{}{}
	}
}

func TestUUID(t *testing.T) {
	t.Parallel()

	id := ids.UUID().NewID()
	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	require.Equal(t, uuid.Version(4), parsed.Version())
}

func TestByScheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		scheme  string
		wantErr error
	}{
		{"Empty", "", nil},
		{"Time", "time", nil},
		{"UUIDUpper", "UUID", nil},
		{"Sequence", "sequence", nil},
		{"Unknown", "snowflake", ids.ErrUnknownScheme},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := ids.ByScheme(tc.scheme)
			if tc.wantErr != nil {
				require.True(t, errors.Is(err, tc.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			require.NotEmpty(t, g.NewID())
		})
	}

	g, err := ids.ByScheme(ids.SchemeSequence)
	require.NoError(t, err)
	require.Equal(t, ids.DefaultSequencePrefix+strconv.Itoa(0), g.NewID())
}

func TestSetDefault(t *testing.T) {
	seq := ids.NewSequence("d")
	prev := ids.SetDefault(seq)
	t.Cleanup(func() { ids.SetDefault(prev) })

	require.Equal(t, "d0", ids.Default().NewID())
	require.Panics(t, func() { ids.SetDefault(nil) })
}
