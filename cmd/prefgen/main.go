package main

import (
	"log/slog"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/prefgen/cmd/prefgen/commands"
	xerrors "git.home.luguber.info/inful/prefgen/internal/errors"
	"git.home.luguber.info/inful/prefgen/internal/version"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("prefgen"),
		kong.Description("Generate Android preference screens from settings documents"),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	global := &commands.Global{Logger: slog.Default()}
	err := ctx.Run(global, &cli)

	// HandleError is a no-op on nil; otherwise it prints the error and
	// exits with the category-specific code.
	adapter := xerrors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
	adapter.HandleError(err)
}
