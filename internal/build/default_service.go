package build

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"git.home.luguber.info/inful/sitecompose/internal/config"
	"git.home.luguber.info/inful/sitecompose/internal/foundation"
	ferrors "git.home.luguber.info/inful/sitecompose/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecompose/internal/gitremote"
	"git.home.luguber.info/inful/sitecompose/internal/logfields"
	"git.home.luguber.info/inful/sitecompose/internal/metrics"
	"git.home.luguber.info/inful/sitecompose/internal/observability"
	"git.home.luguber.info/inful/sitecompose/internal/preset"
	"git.home.luguber.info/inful/sitecompose/internal/site"
)

// Stage names used for logging and metrics.
const (
	StageLoad     = "load"
	StageIdentity = "identity"
	StageCompose  = "compose"
	StageResolve  = "resolve"
	StageWrite    = "write"
)

// RemoteResolver reads repository identity for the identity stage.
type RemoteResolver func(dir string) (gitremote.Remote, error)

// DefaultService is the standard implementation of Service.
type DefaultService struct {
	recorder metrics.Recorder
	remote   RemoteResolver
}

// NewService creates a DefaultService with a no-op recorder and the go-git remote reader.
func NewService() *DefaultService {
	return &DefaultService{
		recorder: metrics.NoopRecorder{},
		remote:   gitremote.FromRepository,
	}
}

// WithRecorder sets the metrics recorder.
func (s *DefaultService) WithRecorder(r metrics.Recorder) *DefaultService {
	if r == nil {
		r = metrics.NoopRecorder{}
	}
	s.recorder = r
	return s
}

// WithRemoteResolver replaces the git remote reader (for testing).
func (s *DefaultService) WithRemoteResolver(fn RemoteResolver) *DefaultService {
	s.remote = fn
	return s
}

type run struct {
	svc    *DefaultService
	result *Result
}

func (r *run) finish(status Status) *Result {
	r.result.Status = status
	r.result.EndTime = time.Now()
	r.result.Duration = r.result.EndTime.Sub(r.result.StartTime)
	r.svc.recorder.ObserveRunDuration(r.result.Duration)
	switch status {
	case StatusSuccess:
		r.svc.recorder.IncRunOutcome(metrics.OutcomeSuccess)
	case StatusInvalid:
		r.svc.recorder.IncRunOutcome(metrics.OutcomeInvalid)
	default:
		r.svc.recorder.IncRunOutcome(metrics.OutcomeFailed)
	}
	return r.result
}

// stage runs fn as a named stage, recording its duration and result.
func (r *run) stage(ctx context.Context, name string, fn func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		r.svc.recorder.IncStageResult(name, metrics.ResultSkipped)
		return err
	}
	ctx = observability.WithStage(ctx, name)
	start := time.Now()
	err := fn(ctx)
	r.svc.recorder.ObserveStageDuration(name, time.Since(start))
	if err != nil {
		r.svc.recorder.IncStageResult(name, metrics.ResultFailed)
		observability.DebugContext(ctx, "Stage failed", logfields.Error(err))
		return err
	}
	r.svc.recorder.IncStageResult(name, metrics.ResultSuccess)
	return nil
}

func (r *run) fail(ctx context.Context, err error) (*Result, error) {
	switch {
	case ctx.Err() != nil:
		return r.finish(StatusCancelled), ctx.Err()
	case ferrors.IsConfigurationError(err):
		for _, fe := range foundation.FieldErrors(err) {
			r.svc.recorder.IncFieldViolation(fieldLabel(fe.Field))
		}
		return r.finish(StatusInvalid), err
	default:
		return r.finish(StatusFailed), err
	}
}

// Run executes load → identity → compose → resolve → write.
func (s *DefaultService) Run(ctx context.Context, req Request) (*Result, error) {
	start := time.Now()
	r := &run{svc: s, result: &Result{StartTime: start}}
	ctx = observability.WithRunID(ctx, start.Format("20060102-150405.000"))

	clock := req.Clock
	if clock == nil {
		clock = site.SystemClock()
	}

	var fragments *config.Fragments
	err := r.stage(ctx, StageLoad, func(ctx context.Context) error {
		s.recorder.SetFragmentFiles(len(req.Files))
		f, norm, err := config.Load(req.Files...)
		if err != nil {
			return err
		}
		fragments = f
		r.result.Warnings = norm.Warnings
		for _, w := range norm.Warnings {
			observability.WarnContext(ctx, "Fragment normalized", logfields.Warning(w))
		}
		observability.DebugContext(ctx, "Fragments loaded", logfields.Files(len(req.Files)))
		return nil
	})
	if err != nil {
		return r.fail(ctx, err)
	}

	if req.GitDir != "" && (fragments.Identity.Organization == "" || fragments.Identity.Project == "") {
		if err := r.stage(ctx, StageIdentity, func(ctx context.Context) error {
			return s.fillIdentity(ctx, req.GitDir, &fragments.Identity)
		}); err != nil {
			return r.fail(ctx, err)
		}
	}

	err = r.stage(ctx, StageCompose, func(ctx context.Context) error {
		cfg, err := site.Compose(*fragments, clock)
		if err != nil {
			return err
		}
		r.result.Config = cfg
		r.result.ConfigID = cfg.ConfigID()
		observability.InfoContext(ctx, "Site configuration composed",
			logfields.BaseURL(cfg.BaseURL()),
			logfields.SiteURL(cfg.SiteURL()),
			logfields.ConfigID(cfg.ConfigID()))
		return nil
	})
	if err != nil {
		return r.fail(ctx, err)
	}

	if req.Options.Resolve {
		_ = r.stage(ctx, StageResolve, func(ctx context.Context) error {
			r.result.Diagnostics = resolvePlugins(r.result.Config)
			for _, d := range r.result.Diagnostics {
				observability.WarnContext(ctx, "Plugin reference", logfields.Plugin(d.ID), slog.String("diagnostic", d.Message))
			}
			return nil
		})
	}

	if req.Output != "" && !req.Options.DryRun {
		err = r.stage(ctx, StageWrite, func(ctx context.Context) error {
			if err := site.WriteFile(r.result.Config, req.Output, req.Format); err != nil {
				return err
			}
			r.result.OutputPath = req.Output
			observability.InfoContext(ctx, "Site configuration written", logfields.Path(req.Output))
			return nil
		})
		if err != nil {
			return r.fail(ctx, err)
		}
	}

	return r.finish(StatusSuccess), nil
}

func (s *DefaultService) fillIdentity(ctx context.Context, dir string, id *config.Identity) error {
	if s.remote == nil {
		return ferrors.InternalError("no git remote resolver configured").Build()
	}
	remote, err := s.remote(dir)
	if err != nil {
		return err
	}
	if id.Organization == "" {
		id.Organization = remote.Organization
	}
	if id.Project == "" {
		id.Project = remote.Project
	}
	observability.InfoContext(ctx, "Identity filled from git remote",
		logfields.Organization(id.Organization),
		logfields.Project(id.Project))
	return nil
}

func resolvePlugins(cfg *site.SiteConfig) []preset.Diagnostic {
	return preset.ResolvePipeline(pipelineEntries(cfg.Presets()), pipelineEntries(cfg.Themes()))
}

func pipelineEntries(plugins []config.Plugin) []preset.Entry {
	out := make([]preset.Entry, len(plugins))
	for i, p := range plugins {
		out[i] = preset.Entry{ID: p.ID, Options: p.Options}
	}
	return out
}

var indexPattern = regexp.MustCompile(`\[\d+\]`)

// fieldLabel drops list indexes so metric label values stay bounded.
func fieldLabel(field string) string {
	return indexPattern.ReplaceAllString(field, "[]")
}

// String summarizes a result for log lines.
func (r *Result) String() string {
	return fmt.Sprintf("%s in %s (config %s)", r.Status, r.Duration.Round(time.Millisecond), r.ConfigID)
}
