// Package commands implements the sitecompose subcommands.
package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/sitecompose/internal/config"
	"git.home.luguber.info/inful/sitecompose/internal/logfields"
	"git.home.luguber.info/inful/sitecompose/internal/site"
)

// Global is passed to every subcommand.
type Global struct {
	Logger *slog.Logger
	// Out receives command output (composed configuration, reports).
	Out io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	EnvFile []string         `name:"env-file" help:"Environment files loaded before fragments are read (default: .env.local, .env)"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Compose  ComposeCmd  `cmd:"" help:"Compose fragment files into a site configuration"`
	Validate ValidateCmd `cmd:"" help:"Validate fragment files without writing output"`
	Init     InitCmd     `cmd:"" help:"Write an example fragment file"`
	Watch    WatchCmd    `cmd:"" help:"Recompose whenever a fragment file changes"`
}

// AfterApply runs after flag parsing; sets up logging and loads environment files once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	loaded, err := config.LoadEnvFiles(c.EnvFile...)
	if err != nil {
		return err
	}
	for _, p := range loaded {
		slog.Debug("Loaded environment file", logfields.Path(p))
	}
	return nil
}

// FragmentFlags are shared by commands that read fragment files.
type FragmentFlags struct {
	Files []string `short:"f" name:"file" required:"" help:"Fragment file (.yaml, .yml, .toml); repeat to layer later files over earlier ones"`
	Year  int      `name:"year" help:"Copyright year (default: current year)"`
}

func (f FragmentFlags) clock() site.Clock {
	if f.Year > 0 {
		return site.FixedClock(f.Year)
	}
	return site.SystemClock()
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// outputFormat maps the --format flag to a config format; "auto" infers it from the output path.
func outputFormat(flag string) config.Format {
	if flag == "auto" {
		return ""
	}
	return config.Format(flag)
}
