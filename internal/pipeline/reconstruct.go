package pipeline

import (
	"context"
	"fmt"

	"github.com/vk/mklandgo/internal/ctxlog"
	"github.com/vk/mklandgo/internal/fsutil"
	"github.com/vk/mklandgo/internal/landscape"
	"github.com/vk/mklandgo/internal/problemfile"
)

// ReconstructedTree pairs a rebuilt clique tree with the codomain file it
// came from; downstream consumers use the path to derive output locations.
type ReconstructedTree struct {
	Tree         *landscape.CliqueTree
	CodomainPath string
}

// Reconstruct rebuilds a full clique tree from a problem file and its
// codomain file. When generated is true the codomain file's first line names
// the function, so two header lines are skipped before the values; otherwise
// one, and the function is unknown.
func (p *Pipeline) Reconstruct(ctx context.Context, problemPath, codomainPath string, generated bool) (*landscape.CliqueTree, error) {
	problem, err := problemfile.Read(problemPath)
	if err != nil {
		return nil, err
	}

	fn := landscape.Function{}
	skip := 1
	if generated {
		skip = 2
		fn, _, err = p.codomain.ReadHeader(codomainPath, generated)
		if err != nil {
			return nil, err
		}
	}

	values, err := p.codomain.ReadValues(problem.Params, codomainPath, skip)
	if err != nil {
		return nil, err
	}

	tree, err := landscape.FuseProblem(problem, fn, values)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Clique tree reconstructed.", "problem", problemPath, "codomain", codomainPath)
	return tree, nil
}

// ReconstructFolders rebuilds every clique tree from two directories of
// codomain and problem files. Both listings are sorted lexicographically and
// paired positionally by sort order, not by file name: callers must
// guarantee the directories hold corresponding files in the same order, as a
// name mismatch pairs files silently. A length mismatch is a hard assertion
// failure.
func (p *Pipeline) ReconstructFolders(ctx context.Context, codomainFolder, problemFolder string, generated bool) ([]ReconstructedTree, error) {
	codomainFiles, err := fsutil.ListDirSorted(codomainFolder)
	if err != nil {
		return nil, err
	}
	problemFiles, err := fsutil.ListDirSorted(problemFolder)
	if err != nil {
		return nil, err
	}
	if len(codomainFiles) != len(problemFiles) {
		panic(fmt.Sprintf("pipeline: codomain folder %s has %d entries but problem folder %s has %d",
			codomainFolder, len(codomainFiles), problemFolder, len(problemFiles)))
	}

	trees := make([]ReconstructedTree, 0, len(codomainFiles))
	for i, codomainFile := range codomainFiles {
		tree, err := p.Reconstruct(ctx, problemFiles[i], codomainFile, generated)
		if err != nil {
			return nil, err
		}
		trees = append(trees, ReconstructedTree{Tree: tree, CodomainPath: codomainFile})
	}
	return trees, nil
}
