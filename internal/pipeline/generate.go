package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vk/mklandgo/internal/config"
	"github.com/vk/mklandgo/internal/ctxlog"
	"github.com/vk/mklandgo/internal/fsutil"
	"github.com/vk/mklandgo/internal/landscape"
	"github.com/vk/mklandgo/internal/problemfile"
)

// FromCodomainFolder generates problems for every codomain file found under
// parentFolder/codomain_files/<sub>/, mirroring the subfolder structure
// under parentFolder/problems/ and reusing each codomain file's name for its
// problem file. generated indicates whether the codomain files carry the
// function descriptor on their first line.
func (p *Pipeline) FromCodomainFolder(ctx context.Context, parentFolder string, generated bool) error {
	logger := ctxlog.FromContext(ctx)
	codomainFolder := filepath.Join(parentFolder, codomainFilesDir)
	problemsFolder := filepath.Join(parentFolder, problemsDir)

	subfolders, err := fsutil.ListDirSorted(codomainFolder)
	if err != nil {
		return err
	}

	for _, subfolder := range subfolders {
		outputFolder := filepath.Join(problemsFolder, filepath.Base(subfolder))
		if err := os.MkdirAll(outputFolder, 0o755); err != nil {
			return err
		}

		files, err := fsutil.ListDirSorted(subfolder)
		if err != nil {
			return err
		}
		logger.Debug("Generating problems for codomain subfolder.", "subfolder", subfolder, "files", len(files))

		for _, file := range files {
			tree, err := p.treeFromCodomainFile(file, generated)
			if err != nil {
				return err
			}
			outputPath := filepath.Join(outputFolder, filepath.Base(file))
			if err := problemfile.Write(landscape.NewProblem(tree), outputPath); err != nil {
				return err
			}
			logger.Debug("Problem written.", "path", outputPath)
		}
	}
	return nil
}

// FromConfigurationFolder runs the full generation pipeline for every
// configuration file inside folder/problem_generation/, in name-sorted
// order. Output folders are derived per configuration file.
func (p *Pipeline) FromConfigurationFolder(ctx context.Context, folder string, replicates int) error {
	files, err := fsutil.ListDirSorted(filepath.Join(folder, problemGenerationDir))
	if err != nil {
		return err
	}
	for _, file := range files {
		if err := p.FromConfigurationFile(ctx, file, "", "", replicates); err != nil {
			return err
		}
	}
	return nil
}

// FromCodomainFile generates a single problem from one codomain file and
// writes it to problemPath, bypassing directory inference.
func (p *Pipeline) FromCodomainFile(ctx context.Context, codomainPath, problemPath string, generated bool) error {
	tree, err := p.treeFromCodomainFile(codomainPath, generated)
	if err != nil {
		return err
	}
	if err := problemfile.Write(landscape.NewProblem(tree), problemPath); err != nil {
		return err
	}
	ctxlog.FromContext(ctx).Info("Problem generated from codomain file.", "codomain", codomainPath, "problem", problemPath)
	return nil
}

// FromConfigurationFile parses configPath and, for every input-parameter
// instance it yields, generates the requested number of replicate problems.
// Each replicate writes a codomain file and a problem file sharing the
// deterministic replicate name. Empty output folders default to the sibling
// codomain_files/ and problems/ folders derived from configPath.
func (p *Pipeline) FromConfigurationFile(ctx context.Context, configPath, codomainFolder, problemFolder string, replicates int) error {
	logger := ctxlog.FromContext(ctx)

	blocks, err := config.FromFile(configPath)
	if err != nil {
		return err
	}

	if codomainFolder == "" {
		codomainFolder = OutputFolder(configPath, codomainFilesDir)
	}
	if problemFolder == "" {
		problemFolder = OutputFolder(configPath, problemsDir)
	}
	for _, folder := range []string{codomainFolder, problemFolder} {
		if err := os.MkdirAll(folder, 0o755); err != nil {
			return err
		}
	}
	logger.Debug("Output folders resolved.", "codomain_folder", codomainFolder, "problem_folder", problemFolder)

	for _, block := range blocks {
		instances, err := block.Instances()
		if err != nil {
			return fmt.Errorf("configuration file %s: %w", configPath, err)
		}
		for _, params := range instances {
			for num := 0; num < replicates; num++ {
				name := ReplicateFileName(block.Function, params, num)

				values, err := p.codomain.GenerateToFile(params, block.Function, filepath.Join(codomainFolder, name), p.rng)
				if err != nil {
					return err
				}
				tree, err := p.builder.Build(params, block.Function, values, p.rng)
				if err != nil {
					return err
				}
				if err := problemfile.Write(landscape.NewProblem(tree), filepath.Join(problemFolder, name)); err != nil {
					return err
				}
				logger.Debug("Replicate generated.", "file", name, "score", tree.GlobOptimaScore, "optima", len(tree.GlobOptima))
			}
		}
	}
	return nil
}

// treeFromCodomainFile reads the header and values of one codomain file and
// hands them to the tree builder.
func (p *Pipeline) treeFromCodomainFile(path string, generated bool) (*landscape.CliqueTree, error) {
	fn, params, err := p.codomain.ReadHeader(path, generated)
	if err != nil {
		return nil, err
	}
	skip := 1
	if generated {
		skip = 2
	}
	values, err := p.codomain.ReadValues(params, path, skip)
	if err != nil {
		return nil, err
	}
	return p.builder.Build(params, fn, values, p.rng)
}
