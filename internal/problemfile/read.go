package problemfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vk/mklandgo/internal/landscape"
)

// Read parses the canonical plain-text form strictly, in the order Write
// emits it. Any absent section, wrong token count, non-numeric token or
// wrong-length bit-string fails with a wrapped ErrMissingLine or ErrFormat.
// Extra lines after the final clique are ignored.
func Read(path string) (landscape.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return landscape.Problem{}, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	next := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("%w: %s (%s)", ErrMissingLine, what, path)
		}
		return sc.Text(), nil
	}

	line, err := next("input parameters")
	if err != nil {
		return landscape.Problem{}, err
	}
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return landscape.Problem{}, fmt.Errorf("%w: first line has %d input parameters, expected 4 (%s)", ErrFormat, len(fields), path)
	}
	nums := make([]int, 4)
	for i, field := range fields {
		nums[i], err = strconv.Atoi(field)
		if err != nil {
			return landscape.Problem{}, fmt.Errorf("%w: input parameter %q is not an integer (%s)", ErrFormat, field, path)
		}
	}
	params := landscape.InputParameters{M: nums[0], K: nums[1], O: nums[2], B: nums[3]}
	if err := params.Validate(); err != nil {
		return landscape.Problem{}, fmt.Errorf("%w: %v (%s)", ErrFormat, err, path)
	}
	problemSize := params.ProblemSize()

	line, err = next("global optimum score")
	if err != nil {
		return landscape.Problem{}, err
	}
	score, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return landscape.Problem{}, fmt.Errorf("%w: global optimum score %q is not a number (%s)", ErrFormat, line, path)
	}

	line, err = next("number of global optima")
	if err != nil {
		return landscape.Problem{}, err
	}
	count, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || count < 0 {
		return landscape.Problem{}, fmt.Errorf("%w: number of global optima %q is not a non-negative integer (%s)", ErrFormat, line, path)
	}

	optima := make([]string, 0, count)
	for i := 0; i < count; i++ {
		line, err = next("global optimum string")
		if err != nil {
			return landscape.Problem{}, err
		}
		if len(line) != problemSize {
			return landscape.Problem{}, fmt.Errorf("%w: global optimum %d has %d characters, expected problem size %d (%s)", ErrFormat, i, len(line), problemSize, path)
		}
		for _, c := range line {
			if c < '0' || c > '9' {
				return landscape.Problem{}, fmt.Errorf("%w: global optimum %d contains non-digit character %q (%s)", ErrFormat, i, c, path)
			}
		}
		optima = append(optima, line)
	}

	cliques := make([][]int, 0, params.M)
	for i := 0; i < params.M; i++ {
		line, err = next("clique variable indices")
		if err != nil {
			return landscape.Problem{}, err
		}
		indices := strings.Fields(line)
		if len(indices) != params.K {
			return landscape.Problem{}, fmt.Errorf("%w: clique %d has %d variable indices, expected k=%d (%s)", ErrFormat, i, len(indices), params.K, path)
		}
		clique := make([]int, params.K)
		for j, index := range indices {
			clique[j], err = strconv.Atoi(index)
			if err != nil {
				return landscape.Problem{}, fmt.Errorf("%w: clique %d variable index %q is not an integer (%s)", ErrFormat, i, index, path)
			}
		}
		cliques = append(cliques, clique)
	}

	return landscape.Problem{
		Params:          params,
		GlobOptimaScore: score,
		GlobOptima:      optima,
		Cliques:         cliques,
	}, nil
}
