package site

import "git.home.luguber.info/inful/sitecompose/internal/config"

// PluginStyle selects how preset and theme entries are laid out in a rendered document.
type PluginStyle int

const (
	// PluginTuples renders the generator-native form: "id" or ["id", {options}].
	PluginTuples PluginStyle = iota
	// PluginTables renders {id = "...", options = {...}} tables, for formats without
	// heterogeneous arrays.
	PluginTables
)

var builderPolicy = map[config.LinkPolicy]string{
	config.LinkPolicyIgnore: "ignore",
	config.LinkPolicyWarn:   "warn",
	config.LinkPolicyFail:   "throw",
}

// Document renders the configuration as a generic map in the generator's field naming.
// Every call returns a fresh map.
func (c *SiteConfig) Document(style PluginStyle) map[string]any {
	id := c.identity
	root := map[string]any{
		"title":                 id.Title,
		"tagline":               id.Tagline,
		"url":                   id.URL,
		"baseUrl":               id.BaseURL,
		"organizationName":      id.Organization,
		"projectName":           id.Project,
		"onBrokenLinks":         builderPolicy[c.linkPolicy.OnBrokenLinks],
		"onBrokenMarkdownLinks": builderPolicy[c.linkPolicy.OnBrokenMarkdownLinks],
		"i18n": map[string]any{
			"defaultLocale": c.i18n.DefaultLocale,
			"locales":       stringList(c.i18n.Locales),
		},
		"themeConfig": themeConfig(c.presentation),
	}
	setIf(root, "favicon", id.Favicon)
	if len(c.presets) > 0 {
		root["presets"] = pluginList(c.presets, style)
	}
	if len(c.themes) > 0 {
		root["themes"] = pluginList(c.themes, style)
	}
	return root
}

func themeConfig(p config.Presentation) map[string]any {
	navbar := map[string]any{"items": navItems(p.Navbar.Items)}
	setIf(navbar, "title", p.Navbar.Title)
	if p.Navbar.Logo != nil {
		logo := map[string]any{"src": p.Navbar.Logo.Src}
		setIf(logo, "alt", p.Navbar.Logo.Alt)
		navbar["logo"] = logo
	}

	prism := map[string]any{}
	setIf(prism, "theme", p.Prism.Theme)
	setIf(prism, "darkTheme", p.Prism.DarkTheme)
	if len(p.Prism.AdditionalLanguages) > 0 {
		prism["additionalLanguages"] = stringList(p.Prism.AdditionalLanguages)
	}

	return map[string]any{
		"colorMode": map[string]any{
			"defaultMode":               string(p.ColorMode.DefaultMode),
			"disableSwitch":             p.ColorMode.DisableSwitch,
			"respectPrefersColorScheme": p.ColorMode.RespectPrefersColorScheme,
		},
		"navbar": navbar,
		"footer": map[string]any{
			"style":     string(p.Footer.Style),
			"links":     footerLinks(p.Footer.Links),
			"copyright": p.Footer.Copyright,
		},
		"prism": prism,
	}
}

func navItems(items []config.NavItem) []any {
	out := make([]any, 0, len(items))
	for _, it := range items {
		m := map[string]any{"position": string(it.Position)}
		if it.Type == config.NavItemDocSidebar {
			m["type"] = "docSidebar"
			m["sidebarId"] = it.SidebarID
		}
		setIf(m, "label", it.Label)
		setIf(m, "href", it.Href)
		setIf(m, "to", it.To)
		setIf(m, "aria-label", it.AriaLabel)
		setIf(m, "className", it.ClassName)
		out = append(out, m)
	}
	return out
}

// footerLinks renders a single untitled group as a flat row of links.
func footerLinks(groups []config.FooterGroup) []any {
	if len(groups) == 1 && groups[0].Title == "" {
		return footerItems(groups[0].Items)
	}
	out := make([]any, 0, len(groups))
	for _, g := range groups {
		m := map[string]any{"items": footerItems(g.Items)}
		setIf(m, "title", g.Title)
		out = append(out, m)
	}
	return out
}

func footerItems(links []config.FooterLink) []any {
	out := make([]any, 0, len(links))
	for _, l := range links {
		m := map[string]any{"label": l.Label}
		setIf(m, "href", l.Href)
		setIf(m, "to", l.To)
		out = append(out, m)
	}
	return out
}

func pluginList(plugins []config.Plugin, style PluginStyle) []any {
	out := make([]any, 0, len(plugins))
	for _, p := range config.ClonePlugins(plugins) {
		switch {
		case style == PluginTables:
			entry := map[string]any{"id": p.ID}
			if len(p.Options) > 0 {
				entry["options"] = dropNil(p.Options)
			}
			out = append(out, entry)
		case len(p.Options) == 0:
			out = append(out, p.ID)
		default:
			out = append(out, []any{p.ID, p.Options})
		}
	}
	return out
}

// dropNil removes null option values, which TOML cannot represent.
func dropNil(m map[string]any) map[string]any {
	for k, v := range m {
		switch t := v.(type) {
		case nil:
			delete(m, k)
		case map[string]any:
			m[k] = dropNil(t)
		}
	}
	return m
}

func stringList(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}

func setIf(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}
