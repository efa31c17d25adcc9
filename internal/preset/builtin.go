package preset

// Built-in identifiers.
const (
	ClassicID     = "classic"
	SearchLocalID = "@easyops-cn/docusaurus-search-local"
)

func init() {
	Register(NewStatic(ClassicID, Capabilities{
		Kind:         KindPreset,
		OptionKeys:   []string{"docs", "blog", "pages", "theme", "sitemap", "gtag", "googleTagManager", "debug"},
		ProvidesDocs: true,
	}, "@docusaurus/preset-classic"))
	Register(NewStatic(SearchLocalID, Capabilities{
		Kind:           KindTheme,
		OptionKeys:     searchOptionKeys,
		ProvidesSearch: true,
	}))
}
