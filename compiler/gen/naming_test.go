package gen_test

import (
	"errors"
	"testing"

	"github.com/syssam/entigen/compiler/gen"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPascal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"user_accounts", "UserAccounts"},
		{"id", "Id"},
		{"username", "Username"},
		{"is_active", "IsActive"},
		{"last-login", "LastLogin"},
		{"order item", "OrderItem"},
		{"user__accounts", "UserAccounts"},
		{"_leading_underscore", "LeadingUnderscore"},
		{"trailing_", "Trailing"},
		{"user_ID", "UserID"},
		{"API_key", "APIKey"},
		{"HTML", "HTML"},
		{"MiXeD_case", "MixedCase"},
		{"2fa_codes", "N2FaCodes"},
		{"123", "N123"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := gen.Pascal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPascalDeterministic(t *testing.T) {
	first, err := gen.Pascal("user_accounts")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := gen.Pascal("user_accounts")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPascalInvalid(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := gen.Pascal("")
		require.Error(t, err)
		assert.True(t, gen.IsNamingError(err))
		assert.True(t, errors.Is(err, gen.ErrInvalidName))
	})

	t.Run("separators_only", func(t *testing.T) {
		for _, in := range []string{"_", "___", "- -", "  "} {
			_, err := gen.Pascal(in)
			require.Error(t, err, "input %q", in)
			assert.True(t, gen.IsNamingError(err))
		}
	})
}
