// Package pipeline orchestrates problem generation and reconstruction. It
// walks configuration and codomain directory trees, derives deterministic
// output paths, and drives the codomain and clique-tree collaborators, which
// are injected behind the CodomainSource and TreeBuilder seams.
//
// All work is sequential. The single rand source is owned exclusively by the
// Pipeline and threaded through every generation call, so a fixed seed and
// identical directory contents reproduce identical output.
package pipeline

import (
	"math/rand/v2"

	"github.com/vk/mklandgo/internal/landscape"
)

// CodomainSource produces and reads codomain value tables. The concrete
// implementation lives in the codomain package.
type CodomainSource interface {
	// GenerateToFile generates values for fn, writes the codomain file at
	// path with the generated two-line header, and returns the values.
	GenerateToFile(params landscape.InputParameters, fn landscape.Function, path string, rng *rand.Rand) ([][]float64, error)

	// ReadHeader recovers the function descriptor (when generated) and the
	// input parameters from a codomain file's header.
	ReadHeader(path string, generated bool) (landscape.Function, landscape.InputParameters, error)

	// ReadValues reads the value tables, skipping skipLines header lines.
	ReadValues(params landscape.InputParameters, path string, skipLines int) ([][]float64, error)
}

// TreeBuilder constructs a populated clique tree from input parameters,
// a codomain function and its values, consuming randomness from rng.
type TreeBuilder interface {
	Build(params landscape.InputParameters, fn landscape.Function, values [][]float64, rng *rand.Rand) (*landscape.CliqueTree, error)
}

// Pipeline bundles the collaborators and the shared random source.
type Pipeline struct {
	codomain CodomainSource
	builder  TreeBuilder
	rng      *rand.Rand
}

// New returns a Pipeline using the given collaborators. The rng must not be
// shared with any other consumer.
func New(codomain CodomainSource, builder TreeBuilder, rng *rand.Rand) *Pipeline {
	return &Pipeline{codomain: codomain, builder: builder, rng: rng}
}
