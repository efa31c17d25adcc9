package preset

// SearchLocalOptions are the options of the local search theme. The composer passes the
// resulting map through untouched; only the builder interprets it.
type SearchLocalOptions struct {
	IndexDocs         *bool
	IndexBlog         *bool
	IndexPages        *bool
	DocsRouteBasePath string
	Hashed            bool
	Language          []string
}

var searchOptionKeys = []string{
	"indexDocs", "indexBlog", "indexPages", "docsRouteBasePath", "blogRouteBasePath",
	"hashed", "language", "highlightSearchTermsOnTargetPage", "searchResultLimits",
	"searchResultContextMaxLength", "explicitSearchResultPath", "searchBarShortcut",
}

// Map converts the options into the plugin option map, omitting unset fields.
func (o SearchLocalOptions) Map() map[string]any {
	m := map[string]any{}
	if o.IndexDocs != nil {
		m["indexDocs"] = *o.IndexDocs
	}
	if o.IndexBlog != nil {
		m["indexBlog"] = *o.IndexBlog
	}
	if o.IndexPages != nil {
		m["indexPages"] = *o.IndexPages
	}
	if o.DocsRouteBasePath != "" {
		m["docsRouteBasePath"] = o.DocsRouteBasePath
	}
	if o.Hashed {
		m["hashed"] = true
	}
	if len(o.Language) > 0 {
		langs := make([]any, len(o.Language))
		for i, l := range o.Language {
			langs[i] = l
		}
		m["language"] = langs
	}
	return m
}
