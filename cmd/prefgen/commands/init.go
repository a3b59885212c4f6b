package commands

import (
	"log/slog"

	"git.home.luguber.info/inful/prefgen/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite existing configuration file"`
}

// Run writes an example project configuration file.
func (i *InitCmd) Run(_ *Global, root *CLI) error {
	path := root.Config
	if path == "" {
		path = "prefgen.yaml"
	}
	if err := config.Init(path, i.Force); err != nil {
		return err
	}
	slog.Info("Wrote example configuration", "path", path)
	return nil
}
