package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/sitecompose/internal/build"
	"git.home.luguber.info/inful/sitecompose/internal/foundation"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct {
	FragmentFlags

	Resolve bool `help:"Also check preset and theme identifiers and option keys against known plugins"`
}

func (v *ValidateCmd) Run(g *Global, _ *CLI) error {
	out := g.out()
	res, err := build.NewService().Run(context.Background(), build.Request{
		Files:   v.Files,
		Clock:   v.clock(),
		Options: build.Options{DryRun: true, Resolve: v.Resolve},
	})
	if err != nil {
		for _, fe := range foundation.FieldErrors(err) {
			_, _ = fmt.Fprintf(out, "invalid %s (%s): %s\n", fe.Field, fe.Code, fe.Message)
		}
		return err
	}

	for _, w := range res.Warnings {
		_, _ = fmt.Fprintf(out, "note: %s\n", w)
	}
	for _, d := range res.Diagnostics {
		_, _ = fmt.Fprintln(out, d.String())
	}
	_, _ = fmt.Fprintf(out, "valid: %s%s (config %s)\n", res.Config.SiteURL(), res.Config.BaseURL(), res.ConfigID)
	return nil
}
