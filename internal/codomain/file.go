package codomain

import (
	"bufio"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/vk/mklandgo/internal/fsutil"
	"github.com/vk/mklandgo/internal/landscape"
)

// Codomain file layout. Generated files carry a two-line header:
//
//	<function id>
//	m k o b
//	<m * 2^k value lines>
//
// Hand-authored files omit the function id line, so readers skip one header
// line instead of two.

// GenerateToFile generates the value tables for fn, writes them to path with
// the generated two-line header, and returns them for immediate use by the
// clique-tree constructor.
func GenerateToFile(params landscape.InputParameters, fn landscape.Function, path string, rng *rand.Rand) ([][]float64, error) {
	values, err := Generate(params, fn, rng)
	if err != nil {
		return nil, err
	}
	err = fsutil.WriteFile(path, func(w *bufio.Writer) error {
		fmt.Fprintln(w, fn.IOString())
		fmt.Fprintf(w, "%d %d %d %d\n", params.M, params.K, params.O, params.B)
		for _, table := range values {
			for _, v := range table {
				fmt.Fprintln(w, strconv.FormatFloat(v, 'g', -1, 64))
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}

// ReadHeader reads the header of a codomain file. When generated is true the
// first line names the codomain function; otherwise the function is unknown
// and the parameter line comes first.
func ReadHeader(path string, generated bool) (landscape.Function, landscape.InputParameters, error) {
	f, err := os.Open(path)
	if err != nil {
		return landscape.Function{}, landscape.InputParameters{}, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	fn := landscape.Function{}
	if generated {
		line, err := scanLine(sc, path, "codomain function header")
		if err != nil {
			return landscape.Function{}, landscape.InputParameters{}, err
		}
		fn, err = landscape.ParseFunction(strings.TrimSpace(line))
		if err != nil {
			return landscape.Function{}, landscape.InputParameters{}, fmt.Errorf("codomain file %s: %w", path, err)
		}
	}

	line, err := scanLine(sc, path, "input parameter header")
	if err != nil {
		return landscape.Function{}, landscape.InputParameters{}, err
	}
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return landscape.Function{}, landscape.InputParameters{}, fmt.Errorf("codomain file %s: parameter header has %d tokens, expected 4", path, len(fields))
	}
	nums := make([]int, 4)
	for i, field := range fields {
		nums[i], err = strconv.Atoi(field)
		if err != nil {
			return landscape.Function{}, landscape.InputParameters{}, fmt.Errorf("codomain file %s: bad parameter %q: %w", path, field, err)
		}
	}
	params := landscape.InputParameters{M: nums[0], K: nums[1], O: nums[2], B: nums[3]}
	if err := params.Validate(); err != nil {
		return landscape.Function{}, landscape.InputParameters{}, fmt.Errorf("codomain file %s: %w", path, err)
	}
	return fn, params, nil
}

// ReadValues reads the value tables from a codomain file, skipping skipLines
// header lines. The shape is dictated by params: m tables of 2^k values, one
// value per line.
func ReadValues(params landscape.InputParameters, path string, skipLines int) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for i := 0; i < skipLines; i++ {
		if _, err := scanLine(sc, path, "header"); err != nil {
			return nil, err
		}
	}

	size := 1 << params.K
	values := make([][]float64, params.M)
	for i := range values {
		table := make([]float64, size)
		for a := range table {
			line, err := scanLine(sc, path, "codomain value")
			if err != nil {
				return nil, err
			}
			table[a], err = strconv.ParseFloat(strings.TrimSpace(line), 64)
			if err != nil {
				return nil, fmt.Errorf("codomain file %s: bad value %q: %w", path, line, err)
			}
		}
		values[i] = table
	}
	return values, nil
}

func scanLine(sc *bufio.Scanner, path, what string) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("codomain file %s: missing %s line", path, what)
	}
	return sc.Text(), nil
}

// Source adapts this package to the pipeline's CodomainSource seam.
type Source struct{}

func (Source) GenerateToFile(params landscape.InputParameters, fn landscape.Function, path string, rng *rand.Rand) ([][]float64, error) {
	return GenerateToFile(params, fn, path, rng)
}

func (Source) ReadHeader(path string, generated bool) (landscape.Function, landscape.InputParameters, error) {
	return ReadHeader(path, generated)
}

func (Source) ReadValues(params landscape.InputParameters, path string, skipLines int) ([][]float64, error) {
	return ReadValues(params, path, skipLines)
}
