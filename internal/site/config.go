package site

import (
	"reflect"

	"git.home.luguber.info/inful/sitecompose/internal/config"
)

// Identity is the resolved identity of a composed site.
type Identity struct {
	Organization string
	Project      string
	Title        string
	Tagline      string
	Favicon      string
	// URL is the site origin, e.g. https://acme.github.io.
	URL string
	// BaseURL is the path prefix the site is served under, e.g. /docs-site/.
	BaseURL string
}

// SiteConfig is a composed site configuration. It is built only by Compose and cannot be
// modified afterwards: accessors hand out copies.
type SiteConfig struct {
	identity     Identity
	i18n         config.I18n
	linkPolicy   config.LinkPolicies
	presets      []config.Plugin
	themes       []config.Plugin
	presentation config.Presentation
	year         int
	configID     string
}

func (c *SiteConfig) Identity() Identity { return c.identity }

// BaseURL returns the derived base path.
func (c *SiteConfig) BaseURL() string { return c.identity.BaseURL }

// SiteURL returns the site origin.
func (c *SiteConfig) SiteURL() string { return c.identity.URL }

func (c *SiteConfig) DefaultLocale() string { return c.i18n.DefaultLocale }

// Locales returns the supported locales in declaration order.
func (c *SiteConfig) Locales() []string { return append([]string(nil), c.i18n.Locales...) }

func (c *SiteConfig) LinkPolicy() config.LinkPolicies { return c.linkPolicy }

// Presets returns the ordered preset pipeline.
func (c *SiteConfig) Presets() []config.Plugin { return config.ClonePlugins(c.presets) }

// Themes returns the ordered theme pipeline.
func (c *SiteConfig) Themes() []config.Plugin { return config.ClonePlugins(c.themes) }

// Presentation returns the resolved presentation settings. Footer.Copyright holds the
// rendered copyright line.
func (c *SiteConfig) Presentation() config.Presentation { return c.presentation.Clone() }

// Copyright returns the rendered footer copyright.
func (c *SiteConfig) Copyright() string { return c.presentation.Footer.Copyright }

// Year is the clock value the configuration was composed with.
func (c *SiteConfig) Year() int { return c.year }

// ConfigID is a name-based UUID over the rendered configuration and year. Equal inputs and
// clock yield equal IDs.
func (c *SiteConfig) ConfigID() string { return c.configID }

// Equal reports structural equality.
func (c *SiteConfig) Equal(other *SiteConfig) bool {
	if c == nil || other == nil {
		return c == other
	}
	return reflect.DeepEqual(c, other)
}
