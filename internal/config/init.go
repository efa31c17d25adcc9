package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/sitecompose/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecompose/internal/preset"
)

// Example returns a complete single-locale fragment set for a project documentation site.
func Example() Fragments {
	noBlog := false
	return Fragments{
		Identity: Identity{
			Organization: "example-org",
			Project:      "docs-site",
			Title:        "Docs Site",
			Favicon:      "images/favicon.png",
		},
		I18n: I18n{DefaultLocale: "en", Locales: []string{"en"}},
		LinkPolicy: LinkPolicies{
			OnBrokenLinks:         LinkPolicyFail,
			OnBrokenMarkdownLinks: LinkPolicyWarn,
		},
		Presets: []Plugin{{
			ID: preset.ClassicID,
			Options: map[string]any{
				"docs":  map[string]any{"routeBasePath": "/", "sidebarPath": "./sidebars.ts"},
				"pages": false,
				"blog":  false,
				"theme": map[string]any{"customCss": "./src/css/custom.css"},
			},
		}},
		Themes: []Plugin{{
			ID:      preset.SearchLocalID,
			Options: preset.SearchLocalOptions{IndexBlog: &noBlog, DocsRouteBasePath: "/", Hashed: true}.Map(),
		}},
		Presentation: Presentation{
			Navbar: Navbar{
				Title: "Docs Site",
				Items: []NavItem{
					{Type: NavItemDocSidebar, SidebarID: "documentationSidebars", Label: "Documentation", Position: NavPositionLeft},
					{Href: "https://example-org.github.io", Label: "Author", Position: NavPositionLeft},
					{Href: "https://github.com/example-org/docs-site", AriaLabel: "Source", ClassName: "header-github-link", Position: NavPositionRight},
				},
			},
			Footer: Footer{
				Style: FooterStyleDark,
				Links: []FooterGroup{{Items: []FooterLink{
					{Label: "Author", Href: "https://example-org.github.io"},
					{Label: "Source", Href: "https://github.com/example-org/docs-site"},
				}}},
			},
			ColorMode: ColorMode{DefaultMode: ColorModeDark, DisableSwitch: true},
			Prism:     Prism{DarkTheme: "vsDark", AdditionalLanguages: []string{"dart", "yaml"}},
		},
	}
}

// Init writes the example fragment file to path.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ValidationError(fmt.Sprintf("fragment file already exists: %s (use --force to overwrite)", path)).
			UserAction().
			WithContext("path", path).
			Build()
	}

	example := Example()
	data, err := yaml.Marshal(&example)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryEncoding, "marshal example fragments").Build()
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write example fragments").WithContext("path", path).Build()
	}
	return nil
}
