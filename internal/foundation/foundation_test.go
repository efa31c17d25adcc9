package foundation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitecompose/internal/foundation/errors"
)

func TestValidation(t *testing.T) {
	t.Run("OneOf", func(t *testing.T) {
		v := OneOf("link_policy", []string{"ignore", "warn", "fail"})
		require.True(t, v("warn").Valid)

		res := v("throw")
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 1)
		require.Equal(t, "one_of", res.Errors[0].Code)
		require.Equal(t, "throw", res.Errors[0].Value)
	})

	t.Run("Chain collects every failure", func(t *testing.T) {
		chain := NewValidatorChain(
			func(s string) ValidationResult { return Valid().Check(s != "", "project", "required", "must not be empty") },
			OneOf("project", []string{"docs"}),
		)
		res := chain.Validate("")
		require.False(t, res.Valid)
		require.Len(t, res.Errors, 2)
		require.True(t, chain.Validate("docs").Valid)
	})

	t.Run("ToError yields configuration error", func(t *testing.T) {
		require.NoError(t, Valid().ToError())

		res := Valid().
			Check(false, "i18n.locales", "required", "must not be empty").
			Check(false, "i18n.default_locale", "membership", "must be a supported locale")
		err := res.ToError()
		require.Error(t, err)
		require.True(t, errors.IsConfigurationError(err))
		require.Contains(t, err.Error(), "field 'i18n.locales': must not be empty")

		fields := FieldErrors(err)
		require.Len(t, fields, 2)
		require.Equal(t, "i18n.default_locale", fields[1].Field)
	})
}
