package users_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
	"github.com/jrsteele09/wellbe/users"
)

func TestValidateEmail(t *testing.T) {
	require.NoError(t, users.ValidateEmail("john@example.com"))
	require.NoError(t, users.ValidateEmail("me@localhost"))
	require.ErrorIs(t, users.ValidateEmail(""), users.ErrEmailRequired)
	require.ErrorIs(t, users.ValidateEmail("   "), users.ErrEmailRequired)
}

func TestValidateCredentials(t *testing.T) {
	require.NoError(t, users.ValidateCredentials("john@example.com", "secret"))
	require.ErrorIs(t, users.ValidateCredentials("john@example.com", "12345"), wellbeerrors.ErrPasswordTooShort)
	require.ErrorIs(t, users.ValidateCredentials("", "12345"), users.ErrEmailRequired)
}
