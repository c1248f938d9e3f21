package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserCreateAndCheckPassword(t *testing.T) {
	repo := &UserRepo{DB: testDB(t)}

	u, err := repo.Create("alice", "s3cret")
	require.NoError(t, err)
	require.NotZero(t, u.ID)
	require.NotEqual(t, "s3cret", u.Password)

	got, err := repo.ByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
	require.True(t, got.CheckPassword("s3cret"))
	require.False(t, got.CheckPassword("wr0ng"))
}

func TestUserDuplicateUsername(t *testing.T) {
	repo := &UserRepo{DB: testDB(t)}

	_, err := repo.Create("alice", "s3cret")
	require.NoError(t, err)

	_, err = repo.Create("alice", "other")
	require.ErrorIs(t, err, ErrDuplicateUsername)
}

func TestUserLookupMissing(t *testing.T) {
	repo := &UserRepo{DB: testDB(t)}

	_, err := repo.ByUsername("nobody")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = repo.ByID(12345)
	require.ErrorIs(t, err, ErrNotFound)
}
