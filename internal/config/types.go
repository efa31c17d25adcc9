package config

// Fragments is the complete set of independently authored configuration fragments
// that the composer merges into one site configuration.
type Fragments struct {
	Identity     Identity     `yaml:"identity" toml:"identity"`
	I18n         I18n         `yaml:"i18n" toml:"i18n"`
	LinkPolicy   LinkPolicies `yaml:"link_policy" toml:"link_policy"`
	Presets      []Plugin     `yaml:"presets,omitempty" toml:"presets,omitempty"` // ordered; later entries resolve after earlier ones
	Themes       []Plugin     `yaml:"themes,omitempty" toml:"themes,omitempty"`
	Presentation Presentation `yaml:"presentation" toml:"presentation"`
}

// Identity names the site and where it is published.
type Identity struct {
	Organization string `yaml:"organization" toml:"organization"`
	Project      string `yaml:"project" toml:"project"`
	Title        string `yaml:"title,omitempty" toml:"title,omitempty"`
	Tagline      string `yaml:"tagline,omitempty" toml:"tagline,omitempty"`
	Favicon      string `yaml:"favicon,omitempty" toml:"favicon,omitempty"`
	// URL overrides the derived https://<organization>.github.io origin.
	URL string `yaml:"url,omitempty" toml:"url,omitempty"`
}

// I18n declares the locales the site is built for.
type I18n struct {
	DefaultLocale string   `yaml:"default_locale" toml:"default_locale"`
	Locales       []string `yaml:"locales" toml:"locales"`
}

// LinkPolicies holds the two independent broken-link gates.
type LinkPolicies struct {
	OnBrokenLinks         LinkPolicy `yaml:"on_broken_links,omitempty" toml:"on_broken_links,omitempty"`
	OnBrokenMarkdownLinks LinkPolicy `yaml:"on_broken_markdown_links,omitempty" toml:"on_broken_markdown_links,omitempty"`
}

// Plugin references a preset, theme or plugin by identifier. The identifier is resolved by the
// external builder; options are passed through untouched.
type Plugin struct {
	ID      string         `yaml:"id" toml:"id"`
	Options map[string]any `yaml:"options,omitempty" toml:"options,omitempty"`
}

// Presentation groups navigation, footer, color mode and highlighting settings.
type Presentation struct {
	Navbar    Navbar    `yaml:"navbar" toml:"navbar"`
	Footer    Footer    `yaml:"footer" toml:"footer"`
	ColorMode ColorMode `yaml:"color_mode" toml:"color_mode"`
	Prism     Prism     `yaml:"prism" toml:"prism"`
}

// Navbar is the top navigation bar. Item order is significant: items render in array
// order within their left or right group.
type Navbar struct {
	Title string    `yaml:"title,omitempty" toml:"title,omitempty"`
	Logo  *NavLogo  `yaml:"logo,omitempty" toml:"logo,omitempty"`
	Items []NavItem `yaml:"items,omitempty" toml:"items,omitempty"`
}

// NavLogo is the optional navbar logo.
type NavLogo struct {
	Alt string `yaml:"alt,omitempty" toml:"alt,omitempty"`
	Src string `yaml:"src" toml:"src"`
}

// NavItem is one navbar entry. A link item targets exactly one of Href (external) or
// To (internal route); a doc sidebar item targets SidebarID.
type NavItem struct {
	Type      NavItemType `yaml:"type,omitempty" toml:"type,omitempty"`
	Label     string      `yaml:"label,omitempty" toml:"label,omitempty"`
	Href      string      `yaml:"href,omitempty" toml:"href,omitempty"`
	To        string      `yaml:"to,omitempty" toml:"to,omitempty"`
	SidebarID string      `yaml:"sidebar_id,omitempty" toml:"sidebar_id,omitempty"`
	AriaLabel string      `yaml:"aria_label,omitempty" toml:"aria_label,omitempty"`
	ClassName string      `yaml:"class_name,omitempty" toml:"class_name,omitempty"`
	Position  NavPosition `yaml:"position,omitempty" toml:"position,omitempty"`
}

// Footer holds link groups and the copyright line.
type Footer struct {
	Style FooterStyle `yaml:"style,omitempty" toml:"style,omitempty"`
	// Links is a list of groups. A single untitled group renders as a flat link row.
	Links []FooterGroup `yaml:"links,omitempty" toml:"links,omitempty"`
	// Copyright may use {year} and {organization} placeholders and inline Markdown.
	// Empty derives "Copyright © <year> <organization>".
	Copyright string `yaml:"copyright,omitempty" toml:"copyright,omitempty"`
}

// FooterGroup is a titled column of footer links.
type FooterGroup struct {
	Title string       `yaml:"title,omitempty" toml:"title,omitempty"`
	Items []FooterLink `yaml:"items" toml:"items"`
}

// FooterLink is a single footer entry.
type FooterLink struct {
	Label string `yaml:"label" toml:"label"`
	Href  string `yaml:"href,omitempty" toml:"href,omitempty"`
	To    string `yaml:"to,omitempty" toml:"to,omitempty"`
}

// ColorMode controls light/dark theming of the generated site.
type ColorMode struct {
	DefaultMode               ColorModeName `yaml:"default_mode,omitempty" toml:"default_mode,omitempty"`
	DisableSwitch             bool          `yaml:"disable_switch,omitempty" toml:"disable_switch,omitempty"`
	RespectPrefersColorScheme bool          `yaml:"respect_prefers_color_scheme,omitempty" toml:"respect_prefers_color_scheme,omitempty"`
}

// Prism configures syntax highlighting.
type Prism struct {
	Theme               string   `yaml:"theme,omitempty" toml:"theme,omitempty"`
	DarkTheme           string   `yaml:"dark_theme,omitempty" toml:"dark_theme,omitempty"`
	AdditionalLanguages []string `yaml:"additional_languages,omitempty" toml:"additional_languages,omitempty"`
}
