package problemfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/mklandgo/internal/landscape"
)

// sampleProblem is the worked example from the format documentation:
// m=2, k=3, o=1 gives problem size (2-1)*(3-1)+3 = 5.
func sampleProblem() landscape.Problem {
	return landscape.Problem{
		Params:          landscape.InputParameters{M: 2, K: 3, O: 1, B: 0},
		GlobOptimaScore: -1.5,
		GlobOptima:      []string{"01010"},
		Cliques:         [][]int{{0, 1, 2}, {2, 3, 4}},
	}
}

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "problem.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestWriteProducesExactBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.txt")
	require.NoError(t, Write(sampleProblem(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "2 3 1 0\n-1.5\n1\n01010\n0 1 2\n2 3 4\n", string(content))
}

func TestWriteOverwritesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content\n"), 0o600))

	require.NoError(t, Write(sampleProblem(), path))
	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, sampleProblem(), got)
}

func TestRoundTrip(t *testing.T) {
	problems := []landscape.Problem{
		sampleProblem(),
		{
			Params:          landscape.InputParameters{M: 1, K: 2, O: 0, B: 3},
			GlobOptimaScore: 0.30000000000000004,
			GlobOptima:      []string{"11", "01"},
			Cliques:         [][]int{{1, 0}},
		},
		{
			Params:          landscape.InputParameters{M: 3, K: 2, O: 1, B: 0},
			GlobOptimaScore: 1e-17,
			GlobOptima:      []string{},
			Cliques:         [][]int{{0, 1}, {1, 2}, {2, 3}},
		},
	}
	for _, problem := range problems {
		path := filepath.Join(t.TempDir(), "problem.txt")
		require.NoError(t, Write(problem, path))

		got, err := Read(path)
		require.NoError(t, err)
		// An empty optimum list reads back as an empty slice.
		if len(problem.GlobOptima) == 0 {
			problem.GlobOptima = []string{}
		}
		if diff := cmp.Diff(problem, got); diff != "" {
			t.Fatalf("round-trip mismatch (-written +read):\n%s", diff)
		}
	}
}

func TestReadIgnoresTrailingLines(t *testing.T) {
	path := writeTemp(t, "2 3 1 0\n-1.5\n1\n01010\n0 1 2\n2 3 4\ntrailing garbage\n1 2 3\n")
	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, sampleProblem(), got)
}

func TestReadStrictFailures(t *testing.T) {
	cases := []struct {
		name     string
		content  string
		wantErr  error
		contains string
	}{
		{"empty file", "", ErrMissingLine, "input parameters"},
		{"missing score", "2 3 1 0\n", ErrMissingLine, "global optimum score"},
		{"missing optimum count", "2 3 1 0\n-1.5\n", ErrMissingLine, "number of global optima"},
		{"missing optimum string", "2 3 1 0\n-1.5\n2\n01010\n", ErrMissingLine, "global optimum string"},
		{"missing clique", "2 3 1 0\n-1.5\n1\n01010\n0 1 2\n", ErrMissingLine, "clique"},
		{"three parameters", "2 3 1\n-1.5\n1\n01010\n0 1 2\n2 3 4\n", ErrFormat, "expected 4"},
		{"five parameters", "2 3 1 0 7\n-1.5\n1\n01010\n0 1 2\n2 3 4\n", ErrFormat, "expected 4"},
		{"non-integer parameter", "2 x 1 0\n-1.5\n1\n01010\n0 1 2\n2 3 4\n", ErrFormat, "not an integer"},
		{"invalid parameters", "2 1 3 0\n-1.5\n1\n01010\n0 1 2\n2 3 4\n", ErrFormat, "overlap"},
		{"non-numeric score", "2 3 1 0\nbad\n1\n01010\n0 1 2\n2 3 4\n", ErrFormat, "score"},
		{"non-integer optimum count", "2 3 1 0\n-1.5\nmany\n01010\n0 1 2\n2 3 4\n", ErrFormat, "number of global optima"},
		{"short optimum", "2 3 1 0\n-1.5\n1\n0101\n0 1 2\n2 3 4\n", ErrFormat, "problem size 5"},
		{"long optimum", "2 3 1 0\n-1.5\n1\n010101\n0 1 2\n2 3 4\n", ErrFormat, "problem size 5"},
		{"non-digit optimum", "2 3 1 0\n-1.5\n1\n01a10\n0 1 2\n2 3 4\n", ErrFormat, "non-digit"},
		{"clique with k-1 indices", "2 3 1 0\n-1.5\n1\n01010\n0 1\n2 3 4\n", ErrFormat, "expected k=3"},
		{"clique with k+1 indices", "2 3 1 0\n-1.5\n1\n01010\n0 1 2 3\n2 3 4\n", ErrFormat, "expected k=3"},
		{"non-integer clique index", "2 3 1 0\n-1.5\n1\n01010\n0 1 z\n2 3 4\n", ErrFormat, "not an integer"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Read(writeTemp(t, tc.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v, want %v", err, tc.wantErr)
			assert.ErrorContains(t, err, tc.contains)
		})
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "does_not_exist.txt"))
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestReadAcceptsNonBinaryDigits(t *testing.T) {
	// Optimum bits are parsed as arbitrary decimal digits for format
	// generality; only 0/1 are meaningful for this landscape model.
	path := writeTemp(t, "2 3 1 0\n-1.5\n1\n01920\n0 1 2\n2 3 4\n")
	got, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"01920"}, got.GlobOptima)
}
