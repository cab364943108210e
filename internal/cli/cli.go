// Package cli is the one-shot command line front end: generate a curriculum,
// validate a saved one, or export it as PDF, JSON or YAML.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/yigit/curricuforge/internal/app/export"
	"github.com/yigit/curricuforge/internal/app/generation"
	"github.com/yigit/curricuforge/internal/config"
)

// App carries the I/O and factories shared by every command
type App struct {
	Out io.Writer
	Err io.Writer

	// NewGenerator builds the provider for the generate command
	NewGenerator func(cfg *config.Config, logger zerolog.Logger) generation.Generator
	Now          func() time.Time

	configPath string
	verbose    bool
	cfg        *config.Config
	logger     zerolog.Logger
}

// NewApp returns an App writing to stdout/stderr and using the configured provider
func NewApp() *App {
	return &App{
		Out:          os.Stdout,
		Err:          os.Stderr,
		NewGenerator: generation.New,
		Now:          time.Now,
	}
}

// RootCommand builds the command tree
func (a *App) RootCommand(version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "curricuforge",
		Short:         "Generate, validate and export eight-semester curricula",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(a.Out)
	root.SetErr(a.Err)

	root.PersistentFlags().StringVar(&a.configPath, "config", filepath.Join("configs", "config.yaml"), "Config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log progress to stderr")

	root.AddCommand(a.generateCommand(), a.validateCommand(), a.exportCommand())
	return root
}

// Execute runs the command tree and prints a styled error on failure
func (a *App) Execute(version string, args []string) int {
	root := a.RootCommand(version)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		writeError(a.Err, err)
		return 1
	}
	return 0
}

func (a *App) setup() error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := zerolog.WarnLevel
	if a.verbose {
		level = zerolog.InfoLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: a.Err, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()
	return nil
}

func (a *App) exporter() *export.Exporter {
	e := export.NewExporter(a.cfg.Export.ProductName)
	e.Now = a.Now
	return e
}
