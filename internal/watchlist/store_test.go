package watchlist

import (
	"context"
	"testing"

	"cinecircle/internal/catalog"
	"cinecircle/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dune = catalog.Movie{ID: "1", Title: "Dune: Part Two", VoteAverage: 8.5}

func TestStore_Add(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	item, err := store.Add(ctx, "u1", dune)
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "1", item.MovieID)
	assert.Equal(t, "Dune: Part Two", item.Movie.Title)

	t.Run("duplicate movie", func(t *testing.T) {
		_, err := store.Add(ctx, "u1", dune)
		require.ErrorIs(t, err, common.ErrAlreadyInCollection)
	})

	t.Run("same movie other user", func(t *testing.T) {
		_, err := store.Add(ctx, "u2", dune)
		require.NoError(t, err)
	})
}

func TestStore_Remove(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	item, err := store.Add(ctx, "u1", dune)
	require.NoError(t, err)

	t.Run("unknown item", func(t *testing.T) {
		err := store.Remove(ctx, "u1", "nope")
		require.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("another user's item id", func(t *testing.T) {
		err := store.Remove(ctx, "u2", item.ID)
		require.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("removes and frees the slot", func(t *testing.T) {
		require.NoError(t, store.Remove(ctx, "u1", item.ID))

		contains, err := store.Contains(ctx, "u1", "1")
		require.NoError(t, err)
		assert.False(t, contains)

		// The movie can be added again after removal.
		_, err = store.Add(ctx, "u1", dune)
		require.NoError(t, err)
	})
}

func TestStore_Contains(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	_, err := store.Add(ctx, "u1", dune)
	require.NoError(t, err)

	contains, err := store.Contains(ctx, "u1", "1")
	require.NoError(t, err)
	assert.True(t, contains)

	contains, err = store.Contains(ctx, "u1", "2")
	require.NoError(t, err)
	assert.False(t, contains)

	contains, err = store.Contains(ctx, "u2", "1")
	require.NoError(t, err)
	assert.False(t, contains)
}
