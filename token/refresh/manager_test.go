package refresh_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	wellbeerrors "github.com/jrsteele09/wellbe/internal/errors"
	"github.com/jrsteele09/wellbe/token/refresh"
	refreshrepofake "github.com/jrsteele09/wellbe/token/refresh/repofake"
)

func setupTestFixture(t *testing.T) (*refresh.Manager, *refreshrepofake.FakeRefreshTokenRepo) {
	t.Helper()
	repo := refreshrepofake.NewFakeRefreshTokenRepo()
	m, err := refresh.NewManager(repo, 16, time.Hour)
	require.NoError(t, err)
	return m, repo
}

func TestCreateReplacesExisting(t *testing.T) {
	m, repo := setupTestFixture(t)

	first, err := m.Create("1")
	require.NoError(t, err)
	require.Len(t, first, 32)

	second, err := m.Create("1")
	require.NoError(t, err)
	require.NotEqual(t, first, second)

	_, err = repo.Get(first)
	require.Error(t, err)
	list, err := repo.List(0, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestRotateIsSingleUse(t *testing.T) {
	m, _ := setupTestFixture(t)

	rt, err := m.Create("2")
	require.NoError(t, err)

	userID, next, err := m.Rotate(rt)
	require.NoError(t, err)
	require.Equal(t, "2", userID)
	require.NotEqual(t, rt, next)

	_, _, err = m.Rotate(rt)
	require.ErrorIs(t, err, wellbeerrors.ErrInvalidRefreshToken)

	_, _, err = m.Rotate(next)
	require.NoError(t, err)
}

func TestRotateExpired(t *testing.T) {
	defer func() { refresh.NowTimeFunc = time.Now }()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	refresh.NowTimeFunc = func() time.Time { return now }

	m, _ := setupTestFixture(t)
	rt, err := m.Create("1")
	require.NoError(t, err)

	now = now.Add(2 * time.Hour)
	_, _, err = m.Rotate(rt)
	require.ErrorIs(t, err, wellbeerrors.ErrInvalidRefreshToken)
}

func TestRevoke(t *testing.T) {
	m, _ := setupTestFixture(t)
	rt, err := m.Create("1")
	require.NoError(t, err)

	m.Revoke(rt)
	m.Revoke("unknown")
	_, _, err = m.Rotate(rt)
	require.ErrorIs(t, err, wellbeerrors.ErrInvalidRefreshToken)
}
