package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sitecompose/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite an existing file"`
	Output string `short:"o" help:"Path of the fragment file to create" default:"sitecompose.yaml"`
}

func (i *InitCmd) Run(g *Global, _ *CLI) error {
	if err := config.Init(i.Output, i.Force); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out(), "Wrote example fragments to %s\n", i.Output)
	return nil
}
