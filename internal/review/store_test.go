package review

import (
	"context"
	"testing"

	"cinecircle/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addReview(t *testing.T, store *Store, userID, movieID string, rating int) *Review {
	t.Helper()
	review, err := store.Add(context.Background(), Review{
		UserID: userID, Username: userID, MovieID: movieID,
		Rating: rating, Content: "solid",
	})
	require.NoError(t, err)
	return review
}

func TestStore_StatsForMovie(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	t.Run("no reviews", func(t *testing.T) {
		stats, err := store.StatsForMovie(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, 0, stats.TotalReviews)
		assert.Zero(t, stats.AverageRating)
	})

	addReview(t, store, "u1", "1", 5)
	addReview(t, store, "u2", "1", 4)
	addReview(t, store, "u3", "1", 4)
	addReview(t, store, "u4", "2", 1)

	stats, err := store.StatsForMovie(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalReviews)
	assert.InDelta(t, 13.0/3.0, stats.AverageRating, 0.0001)
	assert.Equal(t, map[int]int{5: 1, 4: 2}, stats.RatingDistribution)
}

func TestStore_React(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()
	review := addReview(t, store, "u1", "1", 5)

	t.Run("unknown review", func(t *testing.T) {
		_, err := store.React(ctx, "u2", "nope", ReactionLike)
		require.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("counts accumulate across users", func(t *testing.T) {
		updated, err := store.React(ctx, "u2", review.ID, ReactionLike)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Likes)

		updated, err = store.React(ctx, "u3", review.ID, ReactionDislike)
		require.NoError(t, err)
		assert.Equal(t, 1, updated.Likes)
		assert.Equal(t, 1, updated.Dislikes)
	})

	t.Run("reacting again replaces", func(t *testing.T) {
		updated, err := store.React(ctx, "u2", review.ID, ReactionDislike)
		require.NoError(t, err)
		assert.Equal(t, 0, updated.Likes)
		assert.Equal(t, 2, updated.Dislikes)

		reaction, err := store.UserReaction(ctx, "u2", review.ID)
		require.NoError(t, err)
		require.NotNil(t, reaction)
		assert.Equal(t, ReactionDislike, reaction.Type)
	})

	t.Run("no reaction yet", func(t *testing.T) {
		reaction, err := store.UserReaction(ctx, "u9", review.ID)
		require.NoError(t, err)
		assert.Nil(t, reaction)
	})
}
