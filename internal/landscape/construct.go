package landscape

import (
	"fmt"
	"math/rand/v2"
	"sort"
)

// Construct builds a fresh clique tree for the given parameters and codomain
// values. The topology is drawn from rng: a random permutation of the
// variables supplies fresh indices, clique 0 takes the first k, and every
// later clique attaches to a uniformly chosen earlier clique, sharing o of
// its variables as the separator. The global optimum score and the complete
// set of optimal bit-strings are then computed by dynamic programming over
// the tree.
//
// The same rng, seeded identically, yields an identical tree.
func Construct(params InputParameters, fn Function, values [][]float64, rng *rand.Rand) (*CliqueTree, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if err := validateCodomainShape(params, values); err != nil {
		return nil, err
	}

	cliques, parents := randomTopology(params, rng)
	score, optima := solve(params, values, cliques, parents)

	return &CliqueTree{
		Params:          params,
		Function:        fn,
		Codomain:        values,
		GlobOptimaScore: score,
		GlobOptima:      optima,
		Cliques:         cliques,
	}, nil
}

// Builder adapts Construct to the pipeline's TreeBuilder seam.
type Builder struct{}

// Build constructs a clique tree; see Construct.
func (Builder) Build(params InputParameters, fn Function, values [][]float64, rng *rand.Rand) (*CliqueTree, error) {
	return Construct(params, fn, values, rng)
}

// Evaluate computes the fitness of a full bit-string: the sum over all
// cliques of the codomain value selected by that clique's bits.
func (t *CliqueTree) Evaluate(solution string) (float64, error) {
	if len(solution) != t.Params.ProblemSize() {
		return 0, fmt.Errorf("solution has %d characters, expected problem size %d", len(solution), t.Params.ProblemSize())
	}
	total := 0.0
	for i, clique := range t.Cliques {
		idx := 0
		for _, v := range clique {
			bit := solution[v] - '0'
			if bit > 1 {
				return 0, fmt.Errorf("solution contains non-binary character %q at variable %d", solution[v], v)
			}
			idx = idx<<1 | int(bit)
		}
		total += t.Codomain[i][idx]
	}
	return total, nil
}

// randomTopology draws the clique variable sets. parents[i] is the index of
// clique i's parent, -1 for the root. Separator entries always come first
// within a clique, so the top o bits of a clique assignment are the
// separator assignment.
func randomTopology(params InputParameters, rng *rand.Rand) (cliques [][]int, parents []int) {
	k, o := params.K, params.O
	perm := rng.Perm(params.ProblemSize())

	cliques = make([][]int, params.M)
	parents = make([]int, params.M)

	cliques[0] = append([]int(nil), perm[:k]...)
	parents[0] = -1
	cursor := k

	for i := 1; i < params.M; i++ {
		parent := rng.IntN(i)
		parents[i] = parent

		clique := make([]int, 0, k)
		for _, pos := range rng.Perm(k)[:o] {
			clique = append(clique, cliques[parent][pos])
		}
		clique = append(clique, perm[cursor:cursor+k-o]...)
		cursor += k - o

		cliques[i] = clique
	}
	return cliques, parents
}

// solve runs the bottom-up dynamic program and the top-down enumeration of
// all optimal bit-strings. Clique indices are already topologically ordered
// (every parent precedes its children), so a reverse sweep visits children
// first.
func solve(params InputParameters, values [][]float64, cliques [][]int, parents []int) (float64, []string) {
	m, k, o := params.M, params.K, params.O
	size := 1 << k

	children := make([][]int, m)
	for i := 1; i < m; i++ {
		children[parents[i]] = append(children[parents[i]], i)
	}

	// varPos[i] maps a global variable index to its position within clique i.
	varPos := make([]map[int]int, m)
	for i, clique := range cliques {
		varPos[i] = make(map[int]int, k)
		for pos, v := range clique {
			varPos[i][v] = pos
		}
	}

	// total[i][a] is the best achievable score of clique i's subtree when
	// clique i's variables are assigned a (first variable most significant).
	// best[i][s] is the maximum of total[i][a] over assignments whose top o
	// bits equal the separator assignment s.
	total := make([][]float64, m)
	best := make([][]float64, m)

	for i := m - 1; i >= 0; i-- {
		total[i] = make([]float64, size)
		for a := 0; a < size; a++ {
			v := values[i][a]
			for _, c := range children[i] {
				v += best[c][separatorIndex(a, k, cliques[c][:o], varPos[i])]
			}
			total[i][a] = v
		}

		best[i] = make([]float64, 1<<o)
		for s := range best[i] {
			bv := total[i][s<<(k-o)]
			for rest := 0; rest < 1<<(k-o); rest++ {
				if v := total[i][s<<(k-o)|rest]; v > bv {
					bv = v
				}
			}
			best[i][s] = bv
		}
	}

	score := total[0][0]
	for _, v := range total[0] {
		if v > score {
			score = v
		}
	}

	optima := enumerateOptima(score, params, cliques, total, best)
	sort.Strings(optima)
	return score, optima
}

// separatorIndex extracts, from parent assignment a, the bits of the child's
// separator variables in child order.
func separatorIndex(a, k int, sepVars []int, parentPos map[int]int) int {
	idx := 0
	for _, v := range sepVars {
		bit := (a >> (k - 1 - parentPos[v])) & 1
		idx = idx<<1 | bit
	}
	return idx
}

// enumerateOptima walks only optimal branches: for the root, every assignment
// achieving the global optimum; for each later clique, every assignment that
// matches the separator fixed by its parent and achieves the conditional
// best. Each combination of such choices is a distinct global optimum.
func enumerateOptima(score float64, params InputParameters, cliques [][]int, total, best [][]float64) []string {
	m, k, o := params.M, params.K, params.O
	cur := make([]byte, params.ProblemSize())

	var optima []string
	var walk func(i int)
	walk = func(i int) {
		if i == m {
			optima = append(optima, string(cur))
			return
		}
		for a := 0; a < 1<<k; a++ {
			if i == 0 {
				if total[0][a] != score {
					continue
				}
			} else {
				s := 0
				for _, v := range cliques[i][:o] {
					s = s<<1 | int(cur[v]-'0')
				}
				if a>>(k-o) != s || total[i][a] != best[i][s] {
					continue
				}
			}
			for pos, v := range cliques[i] {
				cur[v] = byte('0' + (a>>(k-1-pos))&1)
			}
			walk(i + 1)
		}
	}
	walk(0)
	return optima
}
