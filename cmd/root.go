package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dougvj/embed/internal/config"
	"github.com/dougvj/embed/internal/generator"
	"github.com/dougvj/embed/pkg/log"
	"github.com/dougvj/embed/version"
)

// errOptionsAfterFiles is returned when a named flag shows up after the
// first input file. Flag parsing is non-interspersed, so such an argument
// would otherwise be silently embedded as a (nonexistent) input file.
var errOptionsAfterFiles = errors.New("you must specify all options before listing input files")

// Flag values for the root command.
var (
	flagFunction      string
	flagSource        string
	flagHeader        string
	flagManifest      string
	flagPreservePaths bool
	flagVerbose       bool
	flagLogFile       string
)

// rootCmd is the generator itself: one invocation embeds one ordered file
// set behind one named accessor function.
var rootCmd = &cobra.Command{
	Use:   "embed --source <file.c> [--header <file.h>] --function <name> <input files...>",
	Short: "Generate C source and header files with embedded file data",
	Long: `embed generates a C source file (and optionally a matching header) that
contains the bytes of the given input files as static data tables, plus an
accessor function that returns a file's data and exact length by filename.
The generated files are intended to be compiled into a separate build.`,
	Version: version.Version,
	Args:    cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runEmbed(args)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, config.ErrMissingSource) ||
			errors.Is(err, config.ErrMissingFunction) ||
			errors.Is(err, config.ErrNoInputFiles) ||
			errors.Is(err, errOptionsAfterFiles) {
			fmt.Fprintln(os.Stderr)
			fmt.Fprintln(os.Stderr, rootCmd.UsageString())
		}
		os.Exit(1)
	}
}

// init initializes the root command and its flags. Interspersed parsing is
// disabled so the first positional argument ends flag parsing, matching
// the "options, then files" CLI contract.
func init() {
	rootCmd.Flags().SetInterspersed(false)
	rootCmd.Flags().StringVar(&flagFunction, "function", "", "Name of the generated function for retrieving embedded file data")
	rootCmd.Flags().StringVar(&flagSource, "source", "", "Source file to generate")
	rootCmd.Flags().StringVar(&flagHeader, "header", "", "Header file to generate")
	rootCmd.Flags().StringVar(&flagManifest, "manifest", "", "YAML manifest supplying options and input files")
	rootCmd.Flags().BoolVar(&flagPreservePaths, "preserve-paths", false, "Preserve input paths as lookup keys instead of stripping them")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")
}

// runEmbed resolves the effective configuration from the manifest and the
// CLI flags, validates it, and runs the generator. Validation happens
// before any output path is opened, so a failing invocation never creates
// or modifies artifacts.
func runEmbed(args []string) error {
	for _, arg := range args {
		if strings.HasPrefix(arg, "--") {
			return fmt.Errorf("%w (saw %q after the file list started)", errOptionsAfterFiles, arg)
		}
	}

	cfg := &config.Config{}
	if flagManifest != "" {
		loaded, err := config.Load(flagManifest)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	override := &config.Config{
		Function:      flagFunction,
		Source:        flagSource,
		Header:        flagHeader,
		PreservePaths: flagPreservePaths,
		Files:         args,
	}
	if flagVerbose {
		override.Logging.Level = "debug"
	}
	override.Logging.Path = flagLogFile
	config.Merge(cfg, override)

	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}

	return generator.Generate(cfg)
}
