package commands

import (
	"fmt"
	"log/slog"

	"github.com/jamarko/catalogbuilder/internal/config"
	"github.com/jamarko/catalogbuilder/internal/generate"
)

// GenerateCmd implements the 'generate' command.
type GenerateCmd struct {
	Rows   int    `help:"Number of catalog rows to generate (overrides config)"`
	Seed   uint64 `help:"Random seed for reproducible output (0 picks one)"`
	Output string `short:"o" help:"Path of the CSV file to write (overrides config)"`
}

func (g *GenerateCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	rows := cfg.Generator.Rows
	if g.Rows > 0 {
		rows = g.Rows
	}
	seed := cfg.Generator.Seed
	if g.Seed != 0 {
		seed = g.Seed
	}
	output := cfg.Generator.Output
	if g.Output != "" {
		output = g.Output
	}
	if output == "" {
		output = cfg.Catalog.Data
	}

	fmt.Println("Generating synthetic catalog")

	n, err := generate.New(rows, seed, slog.Default()).WriteCSV(output)
	if err != nil {
		fmt.Println("Generation failed")
		return err
	}

	fmt.Printf("Wrote %d rows to %s\n", n, output)
	return nil
}
