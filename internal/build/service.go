package build

import (
	"context"
	"time"

	"git.home.luguber.info/inful/sitecompose/internal/config"
	"git.home.luguber.info/inful/sitecompose/internal/preset"
	"git.home.luguber.info/inful/sitecompose/internal/site"
)

// Service is the canonical interface for running a composition.
type Service interface {
	Run(ctx context.Context, req Request) (*Result, error)
}

// Request contains all inputs of one composition run.
type Request struct {
	// Files are fragment files, layered in order.
	Files []string

	// Output is the destination file. Empty composes without writing.
	Output string

	// Format of the output; inferred from Output when empty.
	Format config.Format

	// Clock supplies the copyright year. Defaults to the system clock.
	Clock site.Clock

	// GitDir, when set, fills an empty organization or project from the repository's
	// origin remote.
	GitDir string

	Options Options
}

// Options modify run behavior.
type Options struct {
	// DryRun composes and validates without writing output.
	DryRun bool

	// Resolve checks preset and theme references against the plugin registry and
	// reports diagnostics. It never fails the run.
	Resolve bool
}

// Result contains the outcome of a run.
type Result struct {
	Status      Status
	Config      *site.SiteConfig
	ConfigID    string
	OutputPath  string
	Warnings    []string
	Diagnostics []preset.Diagnostic
	Duration    time.Duration
	StartTime   time.Time
	EndTime     time.Time
}

// Status represents the outcome of a run.
type Status string

const (
	StatusSuccess Status = "success"
	// StatusInvalid means the fragments failed validation.
	StatusInvalid   Status = "invalid"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

// IsSuccess returns true if the run completed successfully.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}
