package site

import (
	"fmt"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/sitecompose/internal/config"
	ferrors "git.home.luguber.info/inful/sitecompose/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecompose/internal/markdown"
)

// Defaults applied to fields the fragments leave empty.
const (
	DefaultOnBrokenLinks         = config.LinkPolicyFail
	DefaultOnBrokenMarkdownLinks = config.LinkPolicyWarn
	DefaultColorMode             = config.ColorModeDark
	DefaultFooterStyle           = config.FooterStyleDark
	DefaultNavPosition           = config.NavPositionLeft
	DefaultPrismDarkTheme        = "vsDark"
)

// Compose validates the fragments and merges them into a site configuration. The clock is
// read once, for the copyright year. On failure the error is a configuration error that
// lists every field violation (see foundation.FieldErrors) and no configuration is returned.
// The input fragments are not modified.
func Compose(f config.Fragments, clock Clock) (*SiteConfig, error) {
	if clock == nil {
		return nil, ferrors.InternalError("compose requires a clock").Build()
	}
	year := clock.Year()

	in := f.Clone()
	if _, err := config.Normalize(&in); err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryInternal, "normalize fragments").Fatal().Build()
	}
	applyDefaults(&in)

	i18n, vr := validate(in, year)
	if err := vr.ToError(); err != nil {
		return nil, err
	}

	base, origin := DerivePath(in.Identity.Organization, in.Identity.Project)
	if in.Identity.URL != "" {
		origin = trimOrigin(in.Identity.URL)
	}

	copyright, err := deriveCopyright(in.Presentation.Footer.Copyright, in.Identity.Organization, year)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "render copyright").
			Fatal().UserAction().
			WithContext("field", "presentation.footer.copyright").
			Build()
	}
	in.Presentation.Footer.Copyright = copyright

	cfg := &SiteConfig{
		identity: Identity{
			Organization: in.Identity.Organization,
			Project:      in.Identity.Project,
			Title:        in.Identity.Title,
			Tagline:      in.Identity.Tagline,
			Favicon:      in.Identity.Favicon,
			URL:          origin,
			BaseURL:      base,
		},
		i18n:         i18n,
		linkPolicy:   in.LinkPolicy,
		presets:      in.Presets,
		themes:       in.Themes,
		presentation: in.Presentation,
		year:         year,
	}
	id, err := computeConfigID(cfg)
	if err != nil {
		return nil, err
	}
	cfg.configID = id
	return cfg, nil
}

func applyDefaults(f *config.Fragments) {
	id := &f.Identity
	if id.Title == "" {
		id.Title = id.Project
	}
	if id.Tagline == "" {
		id.Tagline = id.Title
	}
	if f.I18n.DefaultLocale == "" && len(f.I18n.Locales) > 0 {
		f.I18n.DefaultLocale = f.I18n.Locales[0]
	}
	if f.LinkPolicy.OnBrokenLinks == "" {
		f.LinkPolicy.OnBrokenLinks = DefaultOnBrokenLinks
	}
	if f.LinkPolicy.OnBrokenMarkdownLinks == "" {
		f.LinkPolicy.OnBrokenMarkdownLinks = DefaultOnBrokenMarkdownLinks
	}

	p := &f.Presentation
	if p.Navbar.Title == "" {
		p.Navbar.Title = id.Title
	}
	for i := range p.Navbar.Items {
		item := &p.Navbar.Items[i]
		if item.Type == "" {
			item.Type = config.NavItemLink
			if item.SidebarID != "" {
				item.Type = config.NavItemDocSidebar
			}
		}
		if item.Position == "" {
			item.Position = DefaultNavPosition
		}
	}
	if p.Footer.Style == "" {
		p.Footer.Style = DefaultFooterStyle
	}
	if p.ColorMode.DefaultMode == "" {
		p.ColorMode.DefaultMode = DefaultColorMode
	}
	if p.Prism.Theme == "" && p.Prism.DarkTheme == "" {
		p.Prism.DarkTheme = DefaultPrismDarkTheme
	}
}

// deriveCopyright fills {year} and {organization} in a provided template and renders its
// inline Markdown. An empty template yields the plain default line.
func deriveCopyright(template, organization string, year int) (string, error) {
	if template == "" {
		return fmt.Sprintf("Copyright © %d %s", year, organization), nil
	}
	r := strings.NewReplacer("{year}", strconv.Itoa(year), "{organization}", organization)
	return markdown.RenderInline(r.Replace(template))
}
