package app

import (
	"context"
	"fmt"

	"github.com/vk/mklandgo/internal/ctxlog"
)

// Run executes the parsed command. Folder-driven commands process their
// folders in argument order; a failure aborts the current unit of work and
// propagates without continuing to sibling folders.
func (a *App) Run(ctx context.Context, cfg *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Info("Random source seeded.", "seed", a.seed)

	cmd := cfg.Command
	switch cmd.Kind {
	case CommandCodomainFolder:
		for _, folder := range cmd.Folders {
			if err := a.pipeline.FromCodomainFolder(ctx, folder, cmd.Generated); err != nil {
				return fmt.Errorf("codomain folder %s: %w", folder, err)
			}
		}
	case CommandConfigurationFolder:
		for _, folder := range cmd.Folders {
			if err := a.pipeline.FromConfigurationFolder(ctx, folder, cmd.Replicates); err != nil {
				return fmt.Errorf("configuration folder %s: %w", folder, err)
			}
		}
	case CommandCodomainFile:
		if err := a.pipeline.FromCodomainFile(ctx, cmd.CodomainPath, cmd.ProblemPath, cmd.Generated); err != nil {
			return err
		}
	case CommandConfigurationFile:
		if err := a.pipeline.FromConfigurationFile(ctx, cmd.ConfigPath, cmd.CodomainFolder, cmd.ProblemFolder, cmd.Replicates); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown command kind %d", cmd.Kind)
	}

	a.logger.Info("Generation finished.")
	return nil
}
