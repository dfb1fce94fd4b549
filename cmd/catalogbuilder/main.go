package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"github.com/jamarko/catalogbuilder/cmd/catalogbuilder/commands"
	"github.com/jamarko/catalogbuilder/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("catalogbuilder"),
		kong.Description("Static product catalog builder: turns a CSV product table into per-product pages and category indexes."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	global := &commands.Global{Logger: slog.Default()}
	ctx.FatalIfErrorf(ctx.Run(global, &cli))
}
