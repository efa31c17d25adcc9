package commands

import (
	"context"
	"log/slog"

	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/sitecompose/internal/build"
	"git.home.luguber.info/inful/sitecompose/internal/config"
	"git.home.luguber.info/inful/sitecompose/internal/logfields"
	"git.home.luguber.info/inful/sitecompose/internal/metrics"
	"git.home.luguber.info/inful/sitecompose/internal/site"
)

// ComposeCmd implements the 'compose' command.
type ComposeCmd struct {
	FragmentFlags

	Output      string `short:"o" help:"Output file; the configuration is printed to stdout when empty"`
	Format      string `name:"format" enum:"auto,json,yaml,toml" default:"auto" help:"Output format (json, yaml, toml); inferred from --output when empty"`
	FromGit     string `name:"from-git" help:"Fill an empty organization or project from this repository's origin remote" type:"path"`
	MetricsFile string `name:"metrics-file" help:"Write Prometheus metrics in text exposition format to this file" type:"path"`
}

func (c *ComposeCmd) Run(g *Global, _ *CLI) error {
	return c.run(context.Background(), g)
}

func (c *ComposeCmd) run(ctx context.Context, g *Global) error {
	svc := build.NewService()
	var reg *prom.Registry
	if c.MetricsFile != "" {
		reg = prom.NewRegistry()
		svc.WithRecorder(metrics.NewPrometheusRecorder(reg))
	}

	res, err := svc.Run(ctx, build.Request{
		Files:  c.Files,
		Output: c.Output,
		Format: outputFormat(c.Format),
		Clock:  c.clock(),
		GitDir: c.FromGit,
	})

	if reg != nil {
		if werr := metrics.WriteTextfile(reg, c.MetricsFile); werr != nil {
			slog.Warn("Failed to write metrics file", logfields.Path(c.MetricsFile), logfields.Error(werr))
		}
	}
	if err != nil {
		return err
	}

	if c.Output == "" {
		format := outputFormat(c.Format)
		if format == "" {
			format = config.FormatJSON
		}
		data, err := site.Marshal(res.Config, format)
		if err != nil {
			return err
		}
		_, err = g.out().Write(data)
		return err
	}
	slog.Info("Composed site configuration",
		logfields.Path(res.OutputPath),
		logfields.ConfigID(res.ConfigID),
		logfields.DurationMS(float64(res.Duration.Microseconds())/1000))
	return nil
}
