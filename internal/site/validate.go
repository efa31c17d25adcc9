package site

import (
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"slices"
	"strings"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/sitecompose/internal/config"
	"git.home.luguber.info/inful/sitecompose/internal/foundation"
	"git.home.luguber.info/inful/sitecompose/internal/markdown"
)

// Field error codes.
const (
	codeRequired     = "required"
	codeSegment      = "path_segment"
	codeHost         = "host"
	codeOrigin       = "origin"
	codeLocale       = "locale"
	codeDuplicate    = "duplicate"
	codeMembership   = "membership"
	codeTarget       = "target"
	codeEmptyLink    = "empty_link"
	codeInvalidClock = "clock"
	codeOptionKey    = "option_key"
	codeOptionValue  = "option_value"
)

// validate checks defaulted fragments. It returns the i18n settings to publish alongside
// every violation found.
func validate(f config.Fragments, year int) (config.I18n, foundation.ValidationResult) {
	vr := validateIdentity(f.Identity)
	i18n, lr := validateI18n(f.I18n)
	vr = vr.Combine(lr).
		Combine(validateLinkPolicies(f.LinkPolicy)).
		Combine(validatePlugins("presets", f.Presets)).
		Combine(validatePlugins("themes", f.Themes)).
		Combine(validatePresentation(f.Presentation)).
		Check(year > 0, "clock.year", codeInvalidClock, fmt.Sprintf("year %d is not a valid copyright year", year))
	return i18n, vr
}

func validateIdentity(id config.Identity) foundation.ValidationResult {
	vr := foundation.Valid()
	orgProblem := segmentProblem(id.Organization)
	vr = vr.Check(orgProblem == "", "identity.organization", codeSegment, "organization "+orgProblem)
	projProblem := segmentProblem(id.Project)
	vr = vr.Check(projProblem == "", "identity.project", codeSegment, "project "+projProblem)

	if id.URL != "" {
		p := originProblem(id.URL)
		return vr.Check(p == "", "identity.url", codeOrigin, "url "+p)
	}
	if orgProblem == "" {
		p := hostProblem(id.Organization)
		vr = vr.Check(p == "", "identity.organization", codeHost, "organization "+p)
	}
	if vr.Valid {
		base, origin := DerivePath(id.Organization, id.Project)
		u, err := url.Parse(origin + base)
		vr = vr.Check(err == nil && u.IsAbs(), "identity.url", codeOrigin, "derived site URL is not absolute")
	}
	return vr
}

// validateI18n checks locale shape only. Locales are published as written because the
// builder resolves locale directories by exact name; BCP 47 canonical forms are used for
// duplicate and membership comparison. The default locale takes the spelling of the
// supported locale it matches.
func validateI18n(in config.I18n) (config.I18n, foundation.ValidationResult) {
	vr := foundation.Valid()
	out := config.I18n{Locales: make([]string, 0, len(in.Locales))}
	canonical := make([]string, 0, len(in.Locales))

	if len(in.Locales) == 0 {
		vr = vr.Check(false, "i18n.locales", codeRequired, "at least one supported locale is required")
	}
	for i, raw := range in.Locales {
		tag, err := language.Parse(raw)
		if err != nil {
			vr = vr.Combine(foundation.Invalid(foundation.NewValidationError(
				fmt.Sprintf("i18n.locales[%d]", i), codeLocale, "not a valid BCP 47 language tag").WithValue(raw)))
			continue
		}
		if slices.Contains(canonical, tag.String()) {
			vr = vr.Combine(foundation.Invalid(foundation.NewValidationError(
				fmt.Sprintf("i18n.locales[%d]", i), codeDuplicate, "locale listed more than once").WithValue(raw)))
			continue
		}
		canonical = append(canonical, tag.String())
		out.Locales = append(out.Locales, raw)
	}

	switch tag, err := language.Parse(in.DefaultLocale); {
	case in.DefaultLocale == "":
		vr = vr.Check(false, "i18n.default_locale", codeRequired, "default locale is required")
	case err != nil:
		vr = vr.Combine(foundation.Invalid(foundation.NewValidationError(
			"i18n.default_locale", codeLocale, "not a valid BCP 47 language tag").WithValue(in.DefaultLocale)))
	default:
		out.DefaultLocale = in.DefaultLocale
		if i := slices.Index(canonical, tag.String()); i >= 0 {
			out.DefaultLocale = out.Locales[i]
		} else if len(in.Locales) > 0 {
			vr = vr.Combine(foundation.Invalid(foundation.NewValidationError(
				"i18n.default_locale", codeMembership,
				fmt.Sprintf("default locale must be one of the supported locales %v", in.Locales)).WithValue(in.DefaultLocale)))
		}
	}
	return out, vr
}

func validateLinkPolicies(lp config.LinkPolicies) foundation.ValidationResult {
	all := config.AllLinkPolicies()
	return foundation.OneOf("link_policy.on_broken_links", all)(lp.OnBrokenLinks).
		Combine(foundation.OneOf("link_policy.on_broken_markdown_links", all)(lp.OnBrokenMarkdownLinks))
}

func validatePlugins(label string, plugins []config.Plugin) foundation.ValidationResult {
	vr := foundation.Valid()
	for i, p := range plugins {
		field := fmt.Sprintf("%s[%d]", label, i)
		vr = vr.Check(p.ID != "", field+".id", codeRequired, "plugin id is required")
		for _, k := range sortedKeys(p.Options) {
			vr = vr.Combine(validateOptionValue(field+".options."+k, p.Options[k]))
		}
	}
	return vr
}

// validateOptionValue checks that an option value can be rendered in every output format:
// maps keyed by strings, finite numbers, and scalars the JSON encoder accepts.
func validateOptionValue(field string, v any) foundation.ValidationResult {
	switch t := v.(type) {
	case nil, string, bool, int, int64, uint64:
		return foundation.Valid()
	case float64:
		return foundation.Valid().Check(!math.IsNaN(t) && !math.IsInf(t, 0), field, codeOptionValue, "option value must be a finite number")
	case map[string]any:
		vr := foundation.Valid()
		for _, k := range sortedKeys(t) {
			vr = vr.Combine(validateOptionValue(field+"."+k, t[k]))
		}
		return vr
	case map[any]any:
		keys := make([]any, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		slices.SortFunc(keys, func(a, b any) int { return strings.Compare(fmt.Sprint(a), fmt.Sprint(b)) })
		vr := foundation.Valid()
		for _, k := range keys {
			ks, ok := k.(string)
			if !ok {
				vr = vr.Combine(foundation.Invalid(foundation.NewValidationError(
					fmt.Sprintf("%s.%v", field, k), codeOptionKey, "option keys must be strings").WithValue(k)))
				continue
			}
			vr = vr.Combine(validateOptionValue(field+"."+ks, t[k]))
		}
		return vr
	case []any:
		vr := foundation.Valid()
		for i, val := range t {
			vr = vr.Combine(validateOptionValue(fmt.Sprintf("%s[%d]", field, i), val))
		}
		return vr
	default:
		_, err := json.Marshal(v)
		return foundation.Valid().Check(err == nil, field, codeOptionValue, fmt.Sprintf("unsupported option value of type %T", v))
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func validatePresentation(p config.Presentation) foundation.ValidationResult {
	vr := foundation.Valid()
	if p.Navbar.Logo != nil {
		vr = vr.Check(p.Navbar.Logo.Src != "", "presentation.navbar.logo.src", codeRequired, "logo source is required")
	}
	for i, item := range p.Navbar.Items {
		vr = vr.Combine(validateNavItem(fmt.Sprintf("presentation.navbar.items[%d]", i), item))
	}
	vr = vr.Combine(foundation.OneOf("presentation.footer.style", config.AllFooterStyles())(p.Footer.Style))
	for gi, g := range p.Footer.Links {
		for li, link := range g.Items {
			field := fmt.Sprintf("presentation.footer.links[%d].items[%d]", gi, li)
			vr = vr.Check(link.Label != "", field+".label", codeRequired, "footer link label is required").
				Check((link.Href == "") != (link.To == ""), field, codeTarget, "footer link needs exactly one of href or to")
		}
	}
	for _, l := range markdown.ExtractLinks(p.Footer.Copyright) {
		vr = vr.Check(l.Destination != "", "presentation.footer.copyright", codeEmptyLink, "copyright contains a link without a destination")
	}
	vr = vr.Combine(foundation.OneOf("presentation.color_mode.default_mode", config.AllColorModes())(p.ColorMode.DefaultMode))
	return vr
}

func validateNavItem(field string, item config.NavItem) foundation.ValidationResult {
	return foundation.NewValidatorChain[config.NavItem](
		func(it config.NavItem) foundation.ValidationResult {
			return foundation.OneOf(field+".type", config.AllNavItemTypes())(it.Type)
		},
		func(it config.NavItem) foundation.ValidationResult {
			return foundation.OneOf(field+".position", config.AllNavPositions())(it.Position)
		},
		func(it config.NavItem) foundation.ValidationResult {
			return foundation.Valid().Check(it.Label != "" || it.AriaLabel != "", field+".label", codeRequired, "nav item needs a label or aria_label")
		},
	).Add(navTarget(field)).Validate(item)
}

// navTarget checks that an item points at exactly one destination for its type.
func navTarget(field string) foundation.Validator[config.NavItem] {
	return func(item config.NavItem) foundation.ValidationResult {
		vr := foundation.Valid()
		switch item.Type {
		case config.NavItemLink:
			vr = vr.Check((item.Href == "") != (item.To == ""), field, codeTarget, "link item needs exactly one of href or to")
		case config.NavItemDocSidebar:
			vr = vr.Check(item.SidebarID != "", field+".sidebar_id", codeRequired, "doc sidebar item needs sidebar_id").
				Check(item.Href == "" && item.To == "", field, codeTarget, "doc sidebar item must not set href or to")
		}
		return vr
	}
}
