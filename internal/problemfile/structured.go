package problemfile

import (
	"bufio"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vk/mklandgo/internal/fsutil"
	"github.com/vk/mklandgo/internal/landscape"
)

// structuredDepthLimit bounds the nesting of the structured form. A Problem
// never nests deeper than mapping -> list of lists, so hitting the limit
// indicates a shape the codec was not designed for.
const structuredDepthLimit = 4

// WriteStructured serializes a problem to its pretty structured (YAML) form.
// Failures, including a value nesting deeper than the depth limit, surface
// as the single ErrStructured category.
func WriteStructured(p landscape.Problem, path string) error {
	var node yaml.Node
	if err := node.Encode(p); err != nil {
		return fmt.Errorf("%w: %v", ErrStructured, err)
	}
	if depth := nodeDepth(&node); depth > structuredDepthLimit {
		return fmt.Errorf("%w: value nests %d levels deep, limit is %d", ErrStructured, depth, structuredDepthLimit)
	}
	return fsutil.WriteFile(path, func(w *bufio.Writer) error {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			enc.Close()
			return fmt.Errorf("%w: %v", ErrStructured, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("%w: %v", ErrStructured, err)
		}
		return nil
	})
}

// ReadStructured deserializes a problem written by WriteStructured. The
// round-trip contract is exact: it accepts what the writer emits, nothing
// broader is promised.
func ReadStructured(path string) (landscape.Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return landscape.Problem{}, err
	}
	defer f.Close()

	var p landscape.Problem
	if err := yaml.NewDecoder(f).Decode(&p); err != nil {
		return landscape.Problem{}, fmt.Errorf("%w: %v", ErrStructured, err)
	}
	return p, nil
}

// nodeDepth returns the nesting depth of an encoded node tree, counting
// scalars as one level and containers as one level plus their deepest child.
func nodeDepth(n *yaml.Node) int {
	deepest := 0
	for _, child := range n.Content {
		if d := nodeDepth(child); d > deepest {
			deepest = d
		}
	}
	return 1 + deepest
}
