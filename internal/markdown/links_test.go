package markdown

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractLinks_InlineLink(t *testing.T) {
	links := ExtractLinks("Copyright [acme](https://acme.dev)")
	require.Len(t, links, 1)
	require.Equal(t, LinkKindInline, links[0].Kind)
	require.Equal(t, "https://acme.dev", links[0].Destination)
}

func TestExtractLinks_ImageLink(t *testing.T) {
	links := ExtractLinks("![Logo](logo.png)")
	require.Len(t, links, 1)
	require.Equal(t, LinkKindImage, links[0].Kind)
	require.Equal(t, "logo.png", links[0].Destination)
}

func TestExtractLinks_AutoLink(t *testing.T) {
	links := ExtractLinks("<https://example.com/path>")
	require.Len(t, links, 1)
	require.Equal(t, LinkKindAuto, links[0].Kind)
	require.Equal(t, "https://example.com/path", links[0].Destination)
}

func TestExtractLinks_EmptyDestination(t *testing.T) {
	links := ExtractLinks("[acme]()")
	require.Len(t, links, 1)
	require.Empty(t, links[0].Destination)
}

func TestExtractLinks_PlainText(t *testing.T) {
	require.Empty(t, ExtractLinks("Copyright © 2026 acme"))
}

func TestRenderInline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Copyright © 2026 acme", "Copyright © 2026 acme"},
		{"link", "Copyright © 2026 [acme](https://acme.dev)", `Copyright © 2026 <a href="https://acme.dev">acme</a>`},
		{"emphasis", "Built by *acme*", "Built by <em>acme</em>"},
		{"escaped", "acme & co", "acme &amp; co"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RenderInline(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
