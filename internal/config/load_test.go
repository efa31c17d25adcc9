package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/sitecompose/internal/foundation/errors"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

const baseYAML = `
identity:
  organization: acme
  project: docs-site
i18n:
  default_locale: en
  locales: [en]
link_policy:
  on_broken_links: throw
  on_broken_markdown_links: WARN
presets:
  - id: classic
    options:
      blog: false
themes:
  - id: "@easyops-cn/docusaurus-search-local"
presentation:
  navbar:
    items:
      - label: Docs
        to: /
      - label: GitHub
        href: https://github.com/acme/docs-site
        position: Right
`

func TestLoadSingleYAML(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "site.yaml", baseYAML)

	f, res, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, "acme", f.Identity.Organization)
	require.Equal(t, []string{"en"}, f.I18n.Locales)
	require.Equal(t, LinkPolicyFail, f.LinkPolicy.OnBrokenLinks)
	require.Equal(t, LinkPolicyWarn, f.LinkPolicy.OnBrokenMarkdownLinks)
	require.Len(t, f.Presets, 1)
	require.Equal(t, false, f.Presets[0].Options["blog"])
	require.Equal(t, NavPositionRight, f.Presentation.Navbar.Items[1].Position)
	require.NotEmpty(t, res.Warnings)
}

func TestLoadLayersOverride(t *testing.T) {
	dir := t.TempDir()
	base := writeFile(t, dir, "base.yaml", baseYAML)
	overlay := writeFile(t, dir, "overlay.toml", `
[identity]
title = "Acme Docs"

[i18n]
default_locale = "fr"
locales = ["fr", "en"]

[[presentation.navbar.items]]
label = "Blog"
to = "/blog"
`)

	f, _, err := Load(base, overlay)
	require.NoError(t, err)
	require.Equal(t, "acme", f.Identity.Organization, "unset scalars keep earlier values")
	require.Equal(t, "Acme Docs", f.Identity.Title)
	require.Equal(t, "fr", f.I18n.DefaultLocale)
	require.Equal(t, []string{"fr", "en"}, f.I18n.Locales, "later lists replace earlier ones in order")
	require.Len(t, f.Presentation.Navbar.Items, 1)
	require.Equal(t, "Blog", f.Presentation.Navbar.Items[0].Label)
	require.Len(t, f.Presets, 1, "lists absent from the overlay are kept")
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("SITE_ORG", "envorg")
	dir := t.TempDir()
	p := writeFile(t, dir, "site.yaml", "identity:\n  organization: ${SITE_ORG}\n  project: p\n")

	f, _, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, "envorg", f.Identity.Organization)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("no paths", func(t *testing.T) {
		_, _, err := Load()
		require.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := Load(filepath.Join(dir, "absent.yaml"))
		require.True(t, ferrors.HasCategory(err, ferrors.CategoryNotFound))
	})

	t.Run("unknown key", func(t *testing.T) {
		p := writeFile(t, dir, "typo.yaml", "identity:\n  organisation: acme\n")
		_, _, err := Load(p)
		require.True(t, ferrors.IsConfigurationError(err))
	})

	t.Run("unknown toml key", func(t *testing.T) {
		p := writeFile(t, dir, "typo.toml", "[identity]\norganisation = \"acme\"\n")
		_, _, err := Load(p)
		require.True(t, ferrors.IsConfigurationError(err))
	})
}

func TestDecodeEmptyDocument(t *testing.T) {
	f, err := Decode(nil, FormatYAML)
	require.NoError(t, err)
	require.Equal(t, Fragments{}, f)

	_, err = Decode([]byte("x"), Format("ini"))
	require.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	require.Equal(t, FormatTOML, FormatFromPath("a/site.TOML"))
	require.Equal(t, FormatJSON, FormatFromPath("site.json"))
	require.Equal(t, FormatYAML, FormatFromPath("site.yml"))
	require.Equal(t, FormatYAML, FormatFromPath("site"))
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "test.env", "SITECOMPOSE_TEST_ENV_VALUE=from-file\n")
	t.Setenv("SITECOMPOSE_TEST_ENV_VALUE", "")
	require.NoError(t, os.Unsetenv("SITECOMPOSE_TEST_ENV_VALUE"))

	loaded, err := LoadEnvFiles(p, filepath.Join(dir, "missing.env"))
	require.NoError(t, err)
	require.Equal(t, []string{p}, loaded)
	require.Equal(t, "from-file", os.Getenv("SITECOMPOSE_TEST_ENV_VALUE"))
}

func TestInit(t *testing.T) {
	p := filepath.Join(t.TempDir(), "site.yaml")

	require.NoError(t, Init(p, false))

	f, _, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, Example().Identity, f.Identity)
	require.Len(t, f.Presets, 1)
	require.Len(t, f.Themes, 1)
	require.Equal(t, true, f.Themes[0].Options["hashed"])
	require.Equal(t, NavItemDocSidebar, f.Presentation.Navbar.Items[0].Type)

	err = Init(p, false)
	require.Error(t, err)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))

	require.NoError(t, Init(p, true))
}
