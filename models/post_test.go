package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPostCreateAndGet(t *testing.T) {
	repo := &PostRepo{DB: testDB(t)}

	created, err := repo.Create("Hello", "World")
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := repo.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, "Hello", got.Title)
	require.Equal(t, "World", got.Content)
	require.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Second)
}

func TestPostGetMissing(t *testing.T) {
	repo := &PostRepo{DB: testDB(t)}
	_, err := repo.Get(12345)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPostUpdateKeepsCreatedAt(t *testing.T) {
	repo := &PostRepo{DB: testDB(t)}

	created, err := repo.Create("Hello", "World")
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, "Hi", "World")
	require.NoError(t, err)
	require.Equal(t, "Hi", updated.Title)

	got, err := repo.Get(created.ID)
	require.NoError(t, err)
	require.Equal(t, "Hi", got.Title)
	require.Equal(t, "World", got.Content)
	require.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Second)
}

func TestPostUpdateMissing(t *testing.T) {
	repo := &PostRepo{DB: testDB(t)}
	_, err := repo.Update(12345, "Hi", "there")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPostDeleteTwice(t *testing.T) {
	repo := &PostRepo{DB: testDB(t)}

	created, err := repo.Create("Hello", "World")
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))
	require.ErrorIs(t, repo.Delete(created.ID), ErrNotFound)
}

func TestPostList(t *testing.T) {
	repo := &PostRepo{DB: testDB(t)}

	posts, err := repo.List()
	require.NoError(t, err)
	require.Empty(t, posts)

	_, err = repo.Create("First", "post")
	require.NoError(t, err)
	_, err = repo.Create("Second", "post")
	require.NoError(t, err)

	posts, err = repo.List()
	require.NoError(t, err)
	require.Len(t, posts, 2)
}
