package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVersionDefaults(t *testing.T) {
	require.NotEmpty(t, Version)
	require.NotEmpty(t, BuildTime)
	require.NotEmpty(t, GitCommit)
}

func TestString(t *testing.T) {
	prev := Version
	t.Cleanup(func() { Version = prev })
	Version = "v1.2.3"
	require.Contains(t, String(), "sitecompose v1.2.3")
}
