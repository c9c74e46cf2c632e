package users_test

import (
	"testing"

	"github.com/jrsteele09/wellbe/users"
	"github.com/stretchr/testify/require"
)

func TestFullName(t *testing.T) {
	require.Equal(t, "John Doe", (&users.User{FirstName: "John", LastName: "Doe"}).FullName())
	require.Equal(t, "Doe", (&users.User{LastName: "Doe"}).FullName())
	require.Equal(t, "John", (&users.User{FirstName: "John"}).FullName())
}

func TestClone(t *testing.T) {
	var nilUser *users.User
	require.Nil(t, nilUser.Clone())

	u := users.MockUsers()[0]
	c := u.Clone()
	c.Email = "other@example.com"
	require.Equal(t, "john@example.com", u.Email)
}
