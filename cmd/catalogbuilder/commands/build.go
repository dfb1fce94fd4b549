package commands

import (
	"fmt"
	"log/slog"

	"github.com/jamarko/catalogbuilder/internal/builder"
	"github.com/jamarko/catalogbuilder/internal/config"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory for the generated site (overrides config)"`
	Clean  bool   `help:"Remove the output directory before building"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if b.Output != "" {
		cfg.Output.Directory = b.Output
	}
	if b.Clean {
		cfg.Output.Clean = true
	}
	return RunBuild(cfg)
}

func RunBuild(cfg *config.Config) error {
	// Friendly user-facing messages on stdout; details go to the logger.
	fmt.Println("Starting catalog build")

	report, err := builder.New(cfg, slog.Default()).Build()
	if err != nil {
		fmt.Println("Build failed")
		return err
	}

	fmt.Printf("Build completed successfully: %d pages in %d categories (%s)\n",
		report.Pages, len(report.Categories), cfg.Output.Directory)
	return nil
}
