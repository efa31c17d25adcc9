package normalization

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type policy string

const (
	policyIgnore policy = "ignore"
	policyWarn   policy = "warn"
	policyFail   policy = "fail"
)

func policyValues() map[string]policy {
	return map[string]policy{
		"ignore": policyIgnore,
		"warn":   policyWarn,
		"fail":   policyFail,
		"throw":  policyFail,
	}
}

func TestNormalizer_Basic(t *testing.T) {
	normalizer := NewNormalizer(policyValues())

	tests := []struct {
		name     string
		input    string
		expected policy
		known    bool
	}{
		{"exact match", "warn", policyWarn, true},
		{"case insensitive", "IGNORE", policyIgnore, true},
		{"with spaces", "  fail  ", policyFail, true},
		{"alias", "Throw", policyFail, true},
		{"unknown returned verbatim", "explode", policy("explode"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := normalizer.Normalize(tt.input)
			require.Equal(t, tt.expected, got)
			require.Equal(t, tt.known, known)
		})
	}
}

func TestNormalizer_WithError(t *testing.T) {
	normalizer := NewNormalizer(policyValues())

	got, err := normalizer.NormalizeWithError("WARN")
	require.NoError(t, err)
	require.Equal(t, policyWarn, got)

	_, err = normalizer.NormalizeWithError("explode")
	require.ErrorContains(t, err, "valid options")
}

func TestNormalizer_Canonical(t *testing.T) {
	normalizer := NewNormalizer(policyValues())

	require.Equal(t, []policy{policyFail, policyIgnore, policyWarn}, normalizer.Canonical())
	require.Equal(t, []string{"fail", "ignore", "throw", "warn"}, normalizer.ValidKeys())
	require.True(t, normalizer.IsCanonical(policyFail))
	require.False(t, normalizer.IsCanonical(policy("throw")))
}

func TestEnumNormalizer_Warnings(t *testing.T) {
	e := NewEnumNormalizer("link policy", policyValues())

	changed := e.NormalizeWithWarning("link_policy.on_broken_links", "THROW")
	require.Equal(t, policyFail, changed.Value)
	require.True(t, changed.Changed)
	require.Contains(t, changed.Warning, "normalized link_policy.on_broken_links from 'THROW' to 'fail'")

	same := e.NormalizeWithWarning("link_policy.on_broken_links", "warn")
	require.False(t, same.Changed)
	require.Empty(t, same.Warning)

	unknown := e.NormalizeWithWarning("link_policy.on_broken_links", "explode")
	require.False(t, unknown.Known)
	require.Equal(t, policy("explode"), unknown.Value)
	require.Contains(t, unknown.Warning, "unknown link policy")

	empty := e.NormalizeWithWarning("link_policy.on_broken_links", "  ")
	require.Equal(t, policy(""), empty.Value)
	require.True(t, empty.Known)
}

func TestEnumNormalizer_Validation(t *testing.T) {
	e := NewEnumNormalizer("color mode", map[string]policy{"dark": "dark", "light": "light"})

	_, err := e.NormalizeWithValidation("sepia")
	require.ErrorContains(t, err, "invalid color mode")
	require.True(t, e.IsValid(" Dark "))
	require.Equal(t, []string{"dark", "light"}, e.ValidValues())
}
