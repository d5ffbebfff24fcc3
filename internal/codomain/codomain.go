// Package codomain produces and reads the codomain value tables that define
// the subfunctions of a TD Mk Landscape. A codomain holds, per clique, one
// value for each of the 2^k assignments of the clique's variables, indexed
// with the first variable most significant.
package codomain

import (
	"fmt"
	"math/bits"
	"math/rand/v2"

	"github.com/vk/mklandgo/internal/landscape"
)

// Generate draws m value tables of 2^k entries each for the given function.
// Functions that use randomness consume it from rng, so a fixed seed yields
// identical tables.
func Generate(params landscape.InputParameters, fn landscape.Function, rng *rand.Rand) ([][]float64, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	size := 1 << params.K
	values := make([][]float64, params.M)
	for i := range values {
		table := make([]float64, size)
		switch fn.Kind {
		case landscape.FunctionRandom:
			for a := range table {
				table[a] = rng.Float64()
			}
		case landscape.FunctionTrap:
			fillTrap(table, params.K, 1)
		case landscape.FunctionDeceptiveTrap:
			fillTrap(table, params.K, 1+rng.Float64())
		default:
			return nil, fmt.Errorf("cannot generate values for codomain function %q", fn)
		}
		values[i] = table
	}
	return values, nil
}

// fillTrap writes the deceptive trap function scaled by scale: the all-ones
// assignment scores k, every other assignment scores k-1-u where u is the
// number of one-bits.
func fillTrap(table []float64, k int, scale float64) {
	for a := range table {
		u := bits.OnesCount(uint(a))
		if u == k {
			table[a] = scale * float64(k)
		} else {
			table[a] = scale * float64(k-1-u)
		}
	}
}
