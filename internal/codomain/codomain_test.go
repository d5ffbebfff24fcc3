package codomain

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/mklandgo/internal/landscape"
)

func newRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func TestGenerateShape(t *testing.T) {
	params := landscape.InputParameters{M: 3, K: 4, O: 2}
	values, err := Generate(params, landscape.Function{Kind: landscape.FunctionRandom}, newRNG(1))
	require.NoError(t, err)

	require.Len(t, values, 3)
	for _, table := range values {
		assert.Len(t, table, 16)
	}
}

func TestGenerateDeterminism(t *testing.T) {
	params := landscape.InputParameters{M: 2, K: 3, O: 1}
	fn := landscape.Function{Kind: landscape.FunctionDeceptiveTrap}

	first, err := Generate(params, fn, newRNG(42))
	require.NoError(t, err)
	second, err := Generate(params, fn, newRNG(42))
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same seed produced different codomains (-first +second):\n%s", diff)
	}
}

func TestGenerateTrapValues(t *testing.T) {
	params := landscape.InputParameters{M: 1, K: 3, O: 0}
	values, err := Generate(params, landscape.Function{Kind: landscape.FunctionTrap}, newRNG(1))
	require.NoError(t, err)

	table := values[0]
	// Index bits count ones: trap scores k at all-ones, k-1-u elsewhere.
	assert.Equal(t, 2.0, table[0b000])
	assert.Equal(t, 1.0, table[0b001])
	assert.Equal(t, 1.0, table[0b100])
	assert.Equal(t, 0.0, table[0b011])
	assert.Equal(t, 3.0, table[0b111])
}

func TestGenerateUnknownFunctionFails(t *testing.T) {
	params := landscape.InputParameters{M: 1, K: 2, O: 0}
	_, err := Generate(params, landscape.Function{}, newRNG(1))
	assert.ErrorContains(t, err, "cannot generate")
}

func TestGenerateToFileRoundTrip(t *testing.T) {
	params := landscape.InputParameters{M: 2, K: 3, O: 1, B: 0}
	fn := landscape.Function{Kind: landscape.FunctionRandom}
	path := filepath.Join(t.TempDir(), "random_2_3_1_0_0.txt")

	written, err := GenerateToFile(params, fn, path, newRNG(9))
	require.NoError(t, err)

	gotFn, gotParams, err := ReadHeader(path, true)
	require.NoError(t, err)
	assert.Equal(t, fn, gotFn)
	assert.Equal(t, params, gotParams)

	// Generated files carry a two-line header.
	read, err := ReadValues(params, path, 2)
	require.NoError(t, err)
	if diff := cmp.Diff(written, read); diff != "" {
		t.Fatalf("codomain file round-trip mismatch (-written +read):\n%s", diff)
	}
}

func TestReadAuthoredFile(t *testing.T) {
	// Hand-authored codomain files omit the function line.
	content := "1 2 0 0\n0.5\n1.5\n-2.5\n3\n"
	path := filepath.Join(t.TempDir(), "authored.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	fn, params, err := ReadHeader(path, false)
	require.NoError(t, err)
	assert.Equal(t, landscape.Function{Kind: landscape.FunctionUnknown}, fn)
	assert.Equal(t, landscape.InputParameters{M: 1, K: 2, O: 0, B: 0}, params)

	values, err := ReadValues(params, path, 1)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0.5, 1.5, -2.5, 3}}, values)
}

func TestReadHeaderErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("empty file", func(t *testing.T) {
		path := filepath.Join(dir, "empty.txt")
		require.NoError(t, os.WriteFile(path, nil, 0o600))
		_, _, err := ReadHeader(path, false)
		assert.ErrorContains(t, err, "missing")
	})

	t.Run("bad parameter count", func(t *testing.T) {
		path := filepath.Join(dir, "short_header.txt")
		require.NoError(t, os.WriteFile(path, []byte("1 2 0\n"), 0o600))
		_, _, err := ReadHeader(path, false)
		assert.ErrorContains(t, err, "expected 4")
	})

	t.Run("unknown function id", func(t *testing.T) {
		path := filepath.Join(dir, "bad_fn.txt")
		require.NoError(t, os.WriteFile(path, []byte("bogus\n1 2 0 0\n"), 0o600))
		_, _, err := ReadHeader(path, true)
		assert.ErrorContains(t, err, "unknown codomain function")
	})
}

func TestReadValuesErrors(t *testing.T) {
	dir := t.TempDir()
	params := landscape.InputParameters{M: 1, K: 2, O: 0}

	t.Run("too few values", func(t *testing.T) {
		path := filepath.Join(dir, "short.txt")
		require.NoError(t, os.WriteFile(path, []byte("1 2 0 0\n0.5\n1.5\n"), 0o600))
		_, err := ReadValues(params, path, 1)
		assert.ErrorContains(t, err, "missing codomain value")
	})

	t.Run("non-numeric value", func(t *testing.T) {
		path := filepath.Join(dir, "bad_value.txt")
		require.NoError(t, os.WriteFile(path, []byte("1 2 0 0\n0.5\nnope\n1\n2\n"), 0o600))
		_, err := ReadValues(params, path, 1)
		assert.ErrorContains(t, err, "bad value")
	})
}
