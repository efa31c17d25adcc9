// Package preset is a capability registry of known build-pipeline plugins.
//
// The composer never consults it: a preset or theme reference is only checked for shape at
// composition time. Resolution against this registry is a separate, advisory step that
// reports identifiers and option keys the external builder is unlikely to understand.
package preset

import (
	"fmt"
	"slices"
	"sync"
)

// Kind is the pipeline slot a plugin occupies.
type Kind string

const (
	KindPreset Kind = "preset"
	KindTheme  Kind = "theme"
)

// Capabilities describes what a registered plugin accepts and provides.
type Capabilities struct {
	Kind Kind
	// OptionKeys lists recognized top-level option keys. Empty means any key is accepted.
	OptionKeys     []string
	ProvidesSearch bool
	ProvidesDocs   bool
}

// Plugin is a registered pipeline plugin.
type Plugin interface {
	ID() string
	Aliases() []string
	Capabilities() Capabilities
}

var (
	regMu sync.RWMutex
	reg   = map[string]Plugin{}
)

// Register adds a plugin under its id and aliases. Duplicate names are ignored.
func Register(p Plugin) {
	if p == nil {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	for _, name := range append([]string{p.ID()}, p.Aliases()...) {
		if _, exists := reg[name]; !exists {
			reg[name] = p
		}
	}
}

// Get retrieves a plugin by id or alias.
func Get(id string) Plugin {
	regMu.RLock()
	defer regMu.RUnlock()
	return reg[id]
}

// Severity grades a resolution diagnostic.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Diagnostic is one resolution finding for a plugin reference.
type Diagnostic struct {
	Index    int
	ID       string
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s[%d] %s: %s", d.Severity, d.Index, d.ID, d.Message)
}

// Resolve checks one ordered plugin reference against the registry.
func Resolve(kind Kind, index int, id string, options map[string]any) []Diagnostic {
	p := Get(id)
	if p == nil {
		return []Diagnostic{{Index: index, ID: id, Severity: SeverityWarning,
			Message: fmt.Sprintf("unknown %s; the builder must be able to resolve it", kind)}}
	}
	var out []Diagnostic
	caps := p.Capabilities()
	if caps.Kind != kind {
		out = append(out, Diagnostic{Index: index, ID: id, Severity: SeverityWarning,
			Message: fmt.Sprintf("registered as a %s but listed under %ss", caps.Kind, kind)})
	}
	if len(caps.OptionKeys) > 0 {
		keys := make([]string, 0, len(options))
		for k := range options {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			if !slices.Contains(caps.OptionKeys, k) {
				out = append(out, Diagnostic{Index: index, ID: id, Severity: SeverityWarning,
					Message: fmt.Sprintf("unrecognized option %q", k)})
			}
		}
	}
	if id != p.ID() {
		out = append(out, Diagnostic{Index: index, ID: id, Severity: SeverityInfo,
			Message: fmt.Sprintf("alias of %s", p.ID())})
	}
	return out
}

// Entry is one ordered preset or theme reference.
type Entry struct {
	ID      string
	Options map[string]any
}

// ResolvePipeline resolves presets then themes in order. Beyond the per-entry findings of
// Resolve it warns when more than one resolved plugin provides search or docs, since the
// builder would mount both.
func ResolvePipeline(presets, themes []Entry) []Diagnostic {
	var out []Diagnostic
	var search, docs string
	check := func(kind Kind, entries []Entry) {
		for i, e := range entries {
			out = append(out, Resolve(kind, i, e.ID, e.Options)...)
			p := Get(e.ID)
			if p == nil {
				continue
			}
			caps := p.Capabilities()
			if caps.ProvidesSearch {
				out = appendProvider(out, &search, "search", kind, i, e.ID, p.ID())
			}
			if caps.ProvidesDocs {
				out = appendProvider(out, &docs, "docs", kind, i, e.ID, p.ID())
			}
		}
	}
	check(KindPreset, presets)
	check(KindTheme, themes)
	return out
}

// appendProvider records the first provider of a capability and warns on later ones.
func appendProvider(out []Diagnostic, first *string, capability string, kind Kind, index int, id, canonical string) []Diagnostic {
	if *first == "" {
		*first = canonical
		return out
	}
	return append(out, Diagnostic{Index: index, ID: id, Severity: SeverityWarning,
		Message: fmt.Sprintf("%s %s duplicates %s already provided by %s", kind, capability, capability, *first)})
}

// staticPlugin is a data-only Plugin implementation for built-ins.
type staticPlugin struct {
	id      string
	aliases []string
	caps    Capabilities
}

func (s staticPlugin) ID() string                 { return s.id }
func (s staticPlugin) Aliases() []string          { return s.aliases }
func (s staticPlugin) Capabilities() Capabilities { return s.caps }

// NewStatic builds a Plugin from fixed metadata, for registering site-specific plugins.
func NewStatic(id string, caps Capabilities, aliases ...string) Plugin {
	return staticPlugin{id: id, aliases: aliases, caps: caps}
}
