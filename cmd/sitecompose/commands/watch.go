package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"git.home.luguber.info/inful/sitecompose/internal/build"
	"git.home.luguber.info/inful/sitecompose/internal/logfields"
	"git.home.luguber.info/inful/sitecompose/internal/watch"
)

// WatchCmd implements the 'watch' command.
type WatchCmd struct {
	FragmentFlags

	Output   string        `short:"o" required:"" help:"Output file rewritten after every change"`
	Format   string        `name:"format" enum:"auto,json,yaml,toml" default:"auto" help:"Output format; inferred from --output when empty"`
	Debounce time.Duration `name:"debounce" default:"300ms" help:"Quiet period before recomposing"`
}

func (w *WatchCmd) Run(_ *Global, _ *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return w.run(ctx)
}

func (w *WatchCmd) run(ctx context.Context) error {
	svc := build.NewService()
	compose := func(ctx context.Context) error {
		res, err := svc.Run(ctx, build.Request{
			Files:  w.Files,
			Output: w.Output,
			Format: outputFormat(w.Format),
			Clock:  w.clock(),
		})
		if err != nil {
			return err
		}
		slog.Info("Recomposed site configuration", logfields.Path(w.Output), logfields.ConfigID(res.ConfigID))
		return nil
	}

	// An invalid starting state is reported but does not stop watching.
	if err := compose(ctx); err != nil {
		slog.Error("Initial composition failed", logfields.Error(err))
	}

	watcher, err := watch.New(w.Files, compose, watch.WithDebounce(w.Debounce))
	if err != nil {
		return err
	}
	if err := watcher.Start(ctx); err != nil {
		return err
	}
	<-ctx.Done()
	slog.Info("Stopping watcher")
	return watcher.Stop()
}
