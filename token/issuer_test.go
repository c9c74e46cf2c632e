package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
	"github.com/jrsteele09/wellbe/token"
	"github.com/jrsteele09/wellbe/users"
)

func newIssuer(t *testing.T, secret string) *token.Issuer {
	t.Helper()
	i, err := token.NewIssuer(token.NewHMACSigner(secret), time.Hour, nil)
	require.NoError(t, err)
	return i
}

func TestIssueAndVerify(t *testing.T) {
	i := newIssuer(t, "secret")
	user := users.MockUsers()[0]

	raw, err := i.Issue(user)
	require.NoError(t, err)

	claims, err := i.Verify(raw)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.Subject)
	require.Equal(t, user.Email, claims.Email)
	require.Equal(t, "John Doe", claims.Name)
	require.NotEmpty(t, claims.ID)
}

func TestVerifyRejects(t *testing.T) {
	i := newIssuer(t, "secret")
	raw, err := i.Issue(users.MockUsers()[0])
	require.NoError(t, err)

	_, err = newIssuer(t, "other").Verify(raw)
	require.ErrorIs(t, err, wellbeerrors.ErrInvalidToken)

	_, err = i.Verify("")
	require.ErrorIs(t, err, wellbeerrors.ErrInvalidToken)

	_, err = i.Verify("not.a.jwt")
	require.ErrorIs(t, err, wellbeerrors.ErrInvalidToken)
}

func TestVerifyExpired(t *testing.T) {
	defer func() { token.NowTimeFunc = time.Now }()
	now := time.Now()
	token.NowTimeFunc = func() time.Time { return now }

	i := newIssuer(t, "secret")
	raw, err := i.Issue(users.MockUsers()[0])
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, err = i.Verify(raw)
	require.ErrorIs(t, err, wellbeerrors.ErrInvalidToken)
}

func TestRevokedTokenFailsVerify(t *testing.T) {
	i := newIssuer(t, "secret")
	raw, err := i.Issue(users.MockUsers()[1])
	require.NoError(t, err)

	claims, err := i.Verify(raw)
	require.NoError(t, err)
	require.NoError(t, i.Revoke(claims))

	_, err = i.Verify(raw)
	require.ErrorIs(t, err, wellbeerrors.ErrInvalidToken)
}

func TestRevocationsExpireWithTheirToken(t *testing.T) {
	defer func() { token.NowTimeFunc = time.Now }()
	now := time.Now()
	token.NowTimeFunc = func() time.Time { return now }

	cache := token.NewInMemoryRevokedTokenCache()
	require.NoError(t, cache.Add("a", now.Add(time.Minute)))
	require.NoError(t, cache.Add("b", now.Add(time.Hour)))
	require.True(t, cache.IsRevoked("a"))
	require.False(t, cache.IsRevoked("c"))

	now = now.Add(2 * time.Minute)
	require.False(t, cache.IsRevoked("a"))
	require.True(t, cache.IsRevoked("b"))
	require.Equal(t, 1, cache.Prune())
}
