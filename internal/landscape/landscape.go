// Package landscape defines the in-memory model of a TD Mk Landscape: the
// input parameters describing its shape, the full clique tree with codomain
// values and global optima, and the codomain-free Problem projection that is
// persisted to disk.
package landscape

import "fmt"

// InputParameters describes the shape of a single problem instance: m cliques
// of k variables each, with o variables shared between a clique and its
// parent, and an auxiliary block parameter b.
type InputParameters struct {
	M int `yaml:"m"`
	K int `yaml:"k"`
	O int `yaml:"o"`
	B int `yaml:"b"`
}

// Validate checks the structural constraints the rest of the system relies
// on: at least one clique, no negative parameters, and k >= o so that the
// problem size is well defined.
func (p InputParameters) Validate() error {
	if p.M < 1 {
		return fmt.Errorf("input parameters: m must be at least 1, got %d", p.M)
	}
	if p.K < 0 || p.O < 0 || p.B < 0 {
		return fmt.Errorf("input parameters: k, o and b must be non-negative, got k=%d o=%d b=%d", p.K, p.O, p.B)
	}
	if p.K < p.O {
		return fmt.Errorf("input parameters: overlap o=%d exceeds clique size k=%d", p.O, p.K)
	}
	return nil
}

// ProblemSize returns the total number of binary variables,
// (m-1)*(k-o) + k. Only meaningful when Validate passes.
func (p InputParameters) ProblemSize() int {
	return (p.M-1)*(p.K-p.O) + p.K
}

// CliqueTree is a fully populated problem instance. It is produced either by
// Construct (generation) or by FuseProblem (reconstruction from files).
type CliqueTree struct {
	Params   InputParameters
	Function Function

	// Codomain holds m tables of 2^k values, indexed by the clique's bits
	// with the first variable most significant.
	Codomain [][]float64

	GlobOptimaScore float64
	// GlobOptima are the full bit-strings achieving GlobOptimaScore, each
	// ProblemSize() digit characters long.
	GlobOptima []string

	// Cliques lists, per clique, the k global variable indices it covers.
	// For every clique after the first, the first O entries are the
	// separator shared with its parent.
	Cliques [][]int
}

// Problem is the persistable projection of a CliqueTree: everything except
// the codomain values and function, which live in a separate codomain file
// and are re-joined on read.
type Problem struct {
	Params          InputParameters `yaml:"input_parameters"`
	GlobOptimaScore float64         `yaml:"glob_optima_score"`
	GlobOptima      []string        `yaml:"glob_optima_strings"`
	Cliques         [][]int         `yaml:"cliques"`
}

// NewProblem projects a CliqueTree into its persistable Problem. Slices are
// copied so the projection shares no state with the source tree.
func NewProblem(tree *CliqueTree) Problem {
	optima := make([]string, len(tree.GlobOptima))
	copy(optima, tree.GlobOptima)

	cliques := make([][]int, len(tree.Cliques))
	for i, clique := range tree.Cliques {
		cliques[i] = append([]int(nil), clique...)
	}

	return Problem{
		Params:          tree.Params,
		GlobOptimaScore: tree.GlobOptimaScore,
		GlobOptima:      optima,
		Cliques:         cliques,
	}
}

// Validate checks the shape invariants of a Problem: m cliques of exactly k
// indices each, and every optimum string exactly ProblemSize() decimal digit
// characters. Digits 2-9 are accepted for format generality even though only
// 0 and 1 are meaningful for this landscape model.
func (p Problem) Validate() error {
	if err := p.Params.Validate(); err != nil {
		return err
	}
	if len(p.Cliques) != p.Params.M {
		return fmt.Errorf("problem has %d cliques, expected m=%d", len(p.Cliques), p.Params.M)
	}
	for i, clique := range p.Cliques {
		if len(clique) != p.Params.K {
			return fmt.Errorf("clique %d has %d variable indices, expected k=%d", i, len(clique), p.Params.K)
		}
	}
	size := p.Params.ProblemSize()
	for i, optimum := range p.GlobOptima {
		if len(optimum) != size {
			return fmt.Errorf("global optimum %d has %d characters, expected problem size %d", i, len(optimum), size)
		}
		for _, c := range optimum {
			if c < '0' || c > '9' {
				return fmt.Errorf("global optimum %d contains non-digit character %q", i, c)
			}
		}
	}
	return nil
}

// FuseProblem rebuilds a full CliqueTree from a parsed Problem and
// separately read codomain values. Nothing is recomputed; the optima stored
// in the problem file are trusted.
func FuseProblem(problem Problem, fn Function, values [][]float64) (*CliqueTree, error) {
	if err := problem.Validate(); err != nil {
		return nil, err
	}
	if err := validateCodomainShape(problem.Params, values); err != nil {
		return nil, err
	}
	return &CliqueTree{
		Params:          problem.Params,
		Function:        fn,
		Codomain:        values,
		GlobOptimaScore: problem.GlobOptimaScore,
		GlobOptima:      problem.GlobOptima,
		Cliques:         problem.Cliques,
	}, nil
}

func validateCodomainShape(params InputParameters, values [][]float64) error {
	if len(values) != params.M {
		return fmt.Errorf("codomain has %d tables, expected m=%d", len(values), params.M)
	}
	want := 1 << params.K
	for i, table := range values {
		if len(table) != want {
			return fmt.Errorf("codomain table %d has %d values, expected 2^k=%d", i, len(table), want)
		}
	}
	return nil
}
