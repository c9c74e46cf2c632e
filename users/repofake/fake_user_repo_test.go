package fakeuserrepo_test

import (
	"testing"
	"time"

	"github.com/jrsteele09/wellbe/users"
	fakeuserrepo "github.com/jrsteele09/wellbe/users/repofake"
	"github.com/stretchr/testify/require"
)

func TestSeededDirectory(t *testing.T) {
	repo := fakeuserrepo.NewFakeUserRepo(users.MockUsers()...)

	u, err := repo.GetByEmail("john@example.com")
	require.NoError(t, err)
	require.Equal(t, "1", u.ID)

	_, err = repo.GetByEmail("JOHN@example.com")
	require.Error(t, err, "emails are matched exactly")
}

func TestUpsertAssignsID(t *testing.T) {
	repo := fakeuserrepo.NewFakeUserRepo()
	u := &users.User{Email: "new@example.com", CreatedAt: time.Now()}
	require.NoError(t, repo.Upsert(u))
	require.NotEmpty(t, u.ID)

	byID, err := repo.GetByID(u.ID)
	require.NoError(t, err)
	require.Equal(t, "new@example.com", byID.Email)
}

func TestListAndDelete(t *testing.T) {
	repo := fakeuserrepo.NewFakeUserRepo(users.MockUsers()...)

	all, err := repo.List(0, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "john@example.com", all[0].Email)

	page, err := repo.List(1, 5)
	require.NoError(t, err)
	require.Len(t, page, 1)

	require.NoError(t, repo.Delete("john@example.com"))
	require.Error(t, repo.Delete("john@example.com"))
	all, _ = repo.List(0, 0)
	require.Len(t, all, 1)
}

func TestSeedIsCopied(t *testing.T) {
	seed := users.MockUsers()
	repo := fakeuserrepo.NewFakeUserRepo(seed...)
	seed[0].FirstName = "Changed"

	u, err := repo.GetByID("1")
	require.NoError(t, err)
	require.Equal(t, "John", u.FirstName)
}
