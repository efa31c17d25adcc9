package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitecompose/cmd/sitecompose/commands"
	ferrors "git.home.luguber.info/inful/sitecompose/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecompose/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("sitecompose"),
		kong.Description("Compose layered documentation-site configuration fragments into one validated site configuration."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	global := &commands.Global{Logger: slog.Default(), Out: os.Stdout}
	if err := parser.Run(global, cli); err != nil {
		ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
