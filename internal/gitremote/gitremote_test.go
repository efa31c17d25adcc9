package gitremote

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	ggitcfg "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/sitecompose/internal/foundation/errors"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		raw  string
		want Remote
	}{
		{"https://github.com/acme/docs-site.git", Remote{"github.com", "acme", "docs-site"}},
		{"https://github.com/acme/docs-site", Remote{"github.com", "acme", "docs-site"}},
		{"git@github.com:acme/docs-site.git", Remote{"github.com", "acme", "docs-site"}},
		{"ssh://git@github.com/acme/docs-site.git", Remote{"github.com", "acme", "docs-site"}},
		{"https://gitlab.com/acme/platform/docs-site.git", Remote{"gitlab.com", "acme", "docs-site"}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseRemoteURL(tt.raw)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "/srv/git/docs", "https://github.com/acme", "not a url"} {
		_, err := ParseRemoteURL(bad)
		require.True(t, ferrors.HasCategory(err, ferrors.CategoryGit), "expected git error for %q", bad)
	}
}

func TestFromRepository(t *testing.T) {
	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	_, err = repo.CreateRemote(&ggitcfg.RemoteConfig{Name: "origin", URLs: []string{"git@github.com:acme/docs-site.git"}})
	require.NoError(t, err)

	sub := filepath.Join(dir, "documentation")
	require.NoError(t, os.Mkdir(sub, 0o755))

	r, err := FromRepository(sub)
	require.NoError(t, err)
	require.Equal(t, "acme", r.Organization)
	require.Equal(t, "docs-site", r.Project)
}

func TestFromRepositoryErrors(t *testing.T) {
	_, err := FromRepository(t.TempDir())
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryGit))

	dir := t.TempDir()
	_, err = git.PlainInit(dir, false)
	require.NoError(t, err)
	_, err = FromRepository(dir)
	require.True(t, ferrors.HasCategory(err, ferrors.CategoryGit))
}
