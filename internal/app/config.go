package app

import "errors"

// CommandKind tags the job-discovery strategy a run uses. Each strategy
// yields a sequence of independent generation jobs consumed uniformly by the
// pipeline.
type CommandKind int

const (
	// CommandNone is the zero value; NewConfig rejects it.
	CommandNone CommandKind = iota
	// CommandCodomainFolder generates problems for every codomain file
	// found under each folder's codomain_files/ subtree.
	CommandCodomainFolder
	// CommandConfigurationFolder runs the full pipeline for every
	// configuration file under each folder's problem_generation/ folder.
	CommandConfigurationFolder
	// CommandCodomainFile generates a single problem from one codomain file.
	CommandCodomainFile
	// CommandConfigurationFile runs the full pipeline for one configuration
	// file with explicit output folders.
	CommandConfigurationFile
)

// Command is the tagged variant parsed from the command line.
type Command struct {
	Kind CommandKind

	// Folders are the input folders of the folder-driven commands.
	Folders []string
	// Generated indicates that codomain files carry the function descriptor
	// on their first line.
	Generated bool
	// Replicates is the number of problems to generate per parameter
	// instance.
	Replicates int

	// CommandCodomainFile paths.
	CodomainPath string
	ProblemPath  string

	// CommandConfigurationFile paths.
	ConfigPath     string
	CodomainFolder string
	ProblemFolder  string
}

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command Command

	// Seed seeds the shared random source; SeedSet distinguishes an
	// explicit zero from an absent flag.
	Seed    uint64
	SeedSet bool

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Command.Kind {
	case CommandCodomainFolder, CommandConfigurationFolder:
		if len(cfg.Command.Folders) == 0 {
			return nil, errors.New("at least one input folder is required")
		}
	case CommandCodomainFile:
		if cfg.Command.CodomainPath == "" || cfg.Command.ProblemPath == "" {
			return nil, errors.New("both the input codomain path and the output problem path are required")
		}
	case CommandConfigurationFile:
		if cfg.Command.ConfigPath == "" || cfg.Command.CodomainFolder == "" || cfg.Command.ProblemFolder == "" {
			return nil, errors.New("a configuration file and both output folders are required")
		}
	default:
		return nil, errors.New("no command specified")
	}
	if cfg.Command.Replicates < 0 {
		return nil, errors.New("the number of problems to generate cannot be negative")
	}
	return &cfg, nil
}
