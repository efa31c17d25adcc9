package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath         = "path"
	KeyFormat       = "format"
	KeyFiles        = "files"
	KeyOrganization = "organization"
	KeyProject      = "project"
	KeyBaseURL      = "base_url"
	KeySiteURL      = "site_url"
	KeyConfigID     = "config_id"
	KeyPlugin       = "plugin"
	KeyDurationMS   = "duration_ms"
	KeyWarning      = "warning"
	KeyError        = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Format(f string) slog.Attr        { return slog.String(KeyFormat, f) }
func Files(n int) slog.Attr            { return slog.Int(KeyFiles, n) }
func Organization(o string) slog.Attr  { return slog.String(KeyOrganization, o) }
func Project(p string) slog.Attr       { return slog.String(KeyProject, p) }
func BaseURL(u string) slog.Attr       { return slog.String(KeyBaseURL, u) }
func SiteURL(u string) slog.Attr       { return slog.String(KeySiteURL, u) }
func ConfigID(id string) slog.Attr     { return slog.String(KeyConfigID, id) }
func Plugin(id string) slog.Attr       { return slog.String(KeyPlugin, id) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Warning(w string) slog.Attr       { return slog.String(KeyWarning, w) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
