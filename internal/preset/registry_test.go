package preset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinsRegistered(t *testing.T) {
	want := map[string]Kind{
		ClassicID:                    KindPreset,
		"@docusaurus/preset-classic": KindPreset,
		SearchLocalID:                KindTheme,
	}
	for id, kind := range want {
		p := Get(id)
		require.NotNil(t, p, "plugin %s not registered", id)
		require.Equal(t, kind, p.Capabilities().Kind)
	}
	require.True(t, Get(SearchLocalID).Capabilities().ProvidesSearch)
}

func TestRegisterIgnoresDuplicates(t *testing.T) {
	Register(NewStatic(ClassicID, Capabilities{Kind: KindTheme}))
	require.Equal(t, KindPreset, Get(ClassicID).Capabilities().Kind)
	Register(nil)
}

func TestResolve(t *testing.T) {
	t.Run("known plugin with known options", func(t *testing.T) {
		diags := Resolve(KindPreset, 0, ClassicID, map[string]any{"docs": map[string]any{}, "blog": false})
		require.Empty(t, diags)
	})

	t.Run("unknown plugin is a warning, not an error", func(t *testing.T) {
		diags := Resolve(KindTheme, 1, "@acme/theme-mermaid", nil)
		require.Len(t, diags, 1)
		require.Equal(t, SeverityWarning, diags[0].Severity)
		require.Equal(t, 1, diags[0].Index)
	})

	t.Run("unrecognized options reported in key order", func(t *testing.T) {
		diags := Resolve(KindTheme, 0, SearchLocalID, map[string]any{"zeta": 1, "hashed": true, "alpha": 2})
		require.Len(t, diags, 2)
		require.Contains(t, diags[0].Message, `"alpha"`)
		require.Contains(t, diags[1].Message, `"zeta"`)
	})

	t.Run("wrong slot and alias", func(t *testing.T) {
		diags := Resolve(KindTheme, 0, "@docusaurus/preset-classic", nil)
		require.Len(t, diags, 2)
		require.Contains(t, diags[0].Message, "registered as a preset")
		require.Equal(t, SeverityInfo, diags[1].Severity)
		require.Equal(t, "info[0] @docusaurus/preset-classic: alias of classic", diags[1].String())
	})
}

func TestResolvePipeline(t *testing.T) {
	t.Run("single providers", func(t *testing.T) {
		diags := ResolvePipeline(
			[]Entry{{ID: ClassicID, Options: map[string]any{"blog": false}}},
			[]Entry{{ID: SearchLocalID, Options: map[string]any{"hashed": true}}},
		)
		require.Empty(t, diags)
	})

	t.Run("duplicate search provider", func(t *testing.T) {
		diags := ResolvePipeline(nil, []Entry{{ID: SearchLocalID}, {ID: "@acme/theme"}, {ID: SearchLocalID}})
		require.Len(t, diags, 2)
		require.Equal(t, "@acme/theme", diags[0].ID)
		require.Equal(t, 2, diags[1].Index)
		require.Contains(t, diags[1].Message, "search already provided by "+SearchLocalID)
	})

	t.Run("duplicate docs provider through alias", func(t *testing.T) {
		diags := ResolvePipeline([]Entry{{ID: ClassicID}, {ID: "@docusaurus/preset-classic"}}, nil)
		require.Len(t, diags, 2)
		require.Equal(t, SeverityInfo, diags[0].Severity)
		require.Equal(t, SeverityWarning, diags[1].Severity)
		require.Contains(t, diags[1].Message, "docs already provided by classic")
	})
}

func TestSearchLocalOptionsMap(t *testing.T) {
	no := false
	m := SearchLocalOptions{IndexBlog: &no, DocsRouteBasePath: "/", Hashed: true, Language: []string{"en", "de"}}.Map()
	require.Equal(t, map[string]any{
		"indexBlog":         false,
		"docsRouteBasePath": "/",
		"hashed":            true,
		"language":          []any{"en", "de"},
	}, m)
	require.Empty(t, SearchLocalOptions{}.Map())
}
