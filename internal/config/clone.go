package config

// Clone returns a deep copy of the fragments, including nested plugin option values.
func (f Fragments) Clone() Fragments {
	out := f
	out.I18n.Locales = cloneStrings(f.I18n.Locales)
	out.Presets = ClonePlugins(f.Presets)
	out.Themes = ClonePlugins(f.Themes)
	out.Presentation = f.Presentation.Clone()
	return out
}

// Clone returns a deep copy of the presentation fragment.
func (p Presentation) Clone() Presentation {
	out := p
	if p.Navbar.Logo != nil {
		logo := *p.Navbar.Logo
		out.Navbar.Logo = &logo
	}
	if p.Navbar.Items != nil {
		out.Navbar.Items = append([]NavItem(nil), p.Navbar.Items...)
	}
	if p.Footer.Links != nil {
		out.Footer.Links = make([]FooterGroup, len(p.Footer.Links))
		for i, g := range p.Footer.Links {
			out.Footer.Links[i] = FooterGroup{Title: g.Title, Items: append([]FooterLink(nil), g.Items...)}
		}
	}
	out.Prism.AdditionalLanguages = cloneStrings(p.Prism.AdditionalLanguages)
	return out
}

// ClonePlugins deep-copies an ordered plugin list.
func ClonePlugins(in []Plugin) []Plugin {
	if in == nil {
		return nil
	}
	out := make([]Plugin, len(in))
	for i, p := range in {
		out[i] = Plugin{ID: p.ID}
		if p.Options != nil {
			out[i].Options, _ = cloneValue(p.Options).(map[string]any)
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = cloneValue(val)
		}
		return m
	case map[any]any:
		m := make(map[any]any, len(t))
		for k, val := range t {
			m[k] = cloneValue(val)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = cloneValue(val)
		}
		return s
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}
