package config

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sitecompose/internal/foundation/normalization"
)

// NormalizationResult captures adjustments & warnings from normalization pass.
type NormalizationResult struct{ Warnings []string }

// Normalize canonicalizes enumerated fields and trims free-text fields in place.
// Unknown enumeration values are left untouched so composition can reject them with the
// original spelling. Normalize is idempotent.
func Normalize(f *Fragments) (*NormalizationResult, error) {
	if f == nil {
		return nil, fmt.Errorf("fragments nil")
	}
	res := &NormalizationResult{}
	normalizeIdentity(&f.Identity, res)
	normalizeI18n(&f.I18n, res)
	normalizeLinkPolicies(&f.LinkPolicy, res)
	f.Presets = normalizePlugins("presets", f.Presets, res)
	f.Themes = normalizePlugins("themes", f.Themes, res)
	normalizePresentation(&f.Presentation, res)
	return res, nil
}

func normalizeIdentity(id *Identity, res *NormalizationResult) {
	trimField("identity.organization", &id.Organization, res)
	trimField("identity.project", &id.Project, res)
	id.Title = strings.TrimSpace(id.Title)
	id.Tagline = strings.TrimSpace(id.Tagline)
	id.Favicon = strings.TrimSpace(id.Favicon)
	id.URL = strings.TrimSpace(id.URL)
}

func normalizeI18n(i *I18n, res *NormalizationResult) {
	trimField("i18n.default_locale", &i.DefaultLocale, res)
	i.Locales = trimListField("i18n.locales", i.Locales, res)
}

func normalizeLinkPolicies(lp *LinkPolicies, res *NormalizationResult) {
	lp.OnBrokenLinks = normalizeEnum(linkPolicyNormalizer, "link_policy.on_broken_links", lp.OnBrokenLinks, res)
	lp.OnBrokenMarkdownLinks = normalizeEnum(linkPolicyNormalizer, "link_policy.on_broken_markdown_links", lp.OnBrokenMarkdownLinks, res)
}

func normalizePlugins(label string, in []Plugin, res *NormalizationResult) []Plugin {
	for i := range in {
		trimField(fmt.Sprintf("%s[%d].id", label, i), &in[i].ID, res)
		for k, v := range in[i].Options {
			in[i].Options[k] = normalizeOption(v)
		}
	}
	return in
}

// normalizeOption rewrites maps whose keys are all strings to map[string]any so options
// decoded from YAML render the same way as options built in code. Maps with other key
// types are kept for validation to report.
func normalizeOption(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeOption(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			ks, ok := k.(string)
			if !ok {
				for k2, val2 := range t {
					t[k2] = normalizeOption(val2)
				}
				return t
			}
			out[ks] = normalizeOption(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalizeOption(val)
		}
		return t
	default:
		return v
	}
}

func normalizePresentation(p *Presentation, res *NormalizationResult) {
	p.Navbar.Title = strings.TrimSpace(p.Navbar.Title)
	for i := range p.Navbar.Items {
		item := &p.Navbar.Items[i]
		prefix := fmt.Sprintf("presentation.navbar.items[%d]", i)
		item.Type = normalizeEnum(navItemTypeNormalizer, prefix+".type", item.Type, res)
		item.Position = normalizeEnum(navPositionNormalizer, prefix+".position", item.Position, res)
		item.Label = strings.TrimSpace(item.Label)
		item.Href = strings.TrimSpace(item.Href)
		item.To = strings.TrimSpace(item.To)
		item.SidebarID = strings.TrimSpace(item.SidebarID)
	}
	p.Footer.Style = normalizeEnum(footerStyleNormalizer, "presentation.footer.style", p.Footer.Style, res)
	for gi := range p.Footer.Links {
		for li := range p.Footer.Links[gi].Items {
			link := &p.Footer.Links[gi].Items[li]
			link.Label = strings.TrimSpace(link.Label)
			link.Href = strings.TrimSpace(link.Href)
			link.To = strings.TrimSpace(link.To)
		}
	}
	p.ColorMode.DefaultMode = normalizeEnum(colorModeNormalizer, "presentation.color_mode.default_mode", p.ColorMode.DefaultMode, res)
	p.Prism.Theme = strings.TrimSpace(p.Prism.Theme)
	p.Prism.DarkTheme = strings.TrimSpace(p.Prism.DarkTheme)
	p.Prism.AdditionalLanguages = trimListField("presentation.prism.additional_languages", p.Prism.AdditionalLanguages, res)
}

// normalizeEnum applies an enum normalizer, keeping unknown values verbatim for validation.
func normalizeEnum[T ~string](n *normalization.EnumNormalizer[T], field string, v T, res *NormalizationResult) T {
	r := n.NormalizeWithWarning(field, string(v))
	if !r.Known {
		return v
	}
	if r.Warning != "" {
		res.Warnings = append(res.Warnings, r.Warning)
	}
	return r.Value
}

func trimField(field string, v *string, res *NormalizationResult) {
	if t := strings.TrimSpace(*v); t != *v {
		res.Warnings = append(res.Warnings, warnChanged(field, *v, t))
		*v = t
	}
}

func warnChanged(field string, from, to interface{}) string {
	return fmt.Sprintf("normalized %s from '%v' to '%v'", field, from, to)
}
