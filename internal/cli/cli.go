// Package cli turns command-line arguments into an app.Config. The four
// subcommands correspond to the four job-discovery strategies of the
// generation pipeline.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/mklandgo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usage = `mklandgo - generate TD Mk Landscape benchmark problems.

Usage:
  mklandgo [options] <command> [command options] [args]

Commands:
  codomain-folder [-g] FOLDER...
      Generate problems for every codomain file under each folder's
      codomain_files/ subtree, mirroring it into problems/.
  configuration-folder [-n N] FOLDER...
      Run the full pipeline for every configuration file inside each
      folder's problem_generation/ folder.
  codomain-file [-g] IN_CODOMAIN OUT_PROBLEM
      Generate a single problem from one codomain file.
  configuration-file [-n N] CONFIG CODOMAIN_OUT_DIR PROBLEM_OUT_DIR
      Run the full pipeline for one configuration file with explicit
      output folders.

The -g flag marks codomain files whose first line names the codomain
function (files written by this generator have it).

Options:
`

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("mklandgo", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, usage)
		flagSet.PrintDefaults()
	}

	seedFlag := flagSet.Uint64("seed", 0, "Seed for the random source. Defaults to the current time.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	seedSet := false
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedSet = true
		}
	})

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}

	command, err := parseCommand(flagSet.Arg(0), flagSet.Args()[1:], output)
	if err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	config, err := app.NewConfig(app.Config{
		Command:   command,
		Seed:      *seedFlag,
		SeedSet:   seedSet,
		LogFormat: logFormat,
		LogLevel:  logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, false, nil
}

// parseCommand parses one subcommand with its own flag set.
func parseCommand(name string, args []string, output io.Writer) (app.Command, error) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)

	switch name {
	case "codomain-folder":
		generated := flagSet.Bool("g", false, "Codomain files carry the function descriptor on their first line.")
		if err := flagSet.Parse(args); err != nil {
			return app.Command{}, err
		}
		return app.Command{
			Kind:      app.CommandCodomainFolder,
			Folders:   flagSet.Args(),
			Generated: *generated,
		}, nil

	case "configuration-folder":
		replicates := flagSet.Int("n", 1, "Number of problems to generate per configuration instance.")
		if err := flagSet.Parse(args); err != nil {
			return app.Command{}, err
		}
		return app.Command{
			Kind:       app.CommandConfigurationFolder,
			Folders:    flagSet.Args(),
			Replicates: *replicates,
		}, nil

	case "codomain-file":
		generated := flagSet.Bool("g", false, "Codomain file carries the function descriptor on its first line.")
		if err := flagSet.Parse(args); err != nil {
			return app.Command{}, err
		}
		if flagSet.NArg() != 2 {
			return app.Command{}, fmt.Errorf("codomain-file expects exactly 2 arguments, got %d", flagSet.NArg())
		}
		return app.Command{
			Kind:         app.CommandCodomainFile,
			CodomainPath: flagSet.Arg(0),
			ProblemPath:  flagSet.Arg(1),
			Generated:    *generated,
		}, nil

	case "configuration-file":
		replicates := flagSet.Int("n", 1, "Number of problems to generate per configuration instance.")
		if err := flagSet.Parse(args); err != nil {
			return app.Command{}, err
		}
		if flagSet.NArg() != 3 {
			return app.Command{}, fmt.Errorf("configuration-file expects exactly 3 arguments, got %d", flagSet.NArg())
		}
		return app.Command{
			Kind:           app.CommandConfigurationFile,
			ConfigPath:     flagSet.Arg(0),
			CodomainFolder: flagSet.Arg(1),
			ProblemFolder:  flagSet.Arg(2),
			Replicates:     *replicates,
		}, nil

	default:
		return app.Command{}, fmt.Errorf("unknown command %q", name)
	}
}
