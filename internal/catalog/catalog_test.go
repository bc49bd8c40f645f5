package catalog

import (
	"context"
	"testing"

	"cinecircle/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ByID(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	movie, err := store.ByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Dune: Part Two", movie.Title)

	_, err = store.ByID(ctx, "999")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestStore_Popular(t *testing.T) {
	store := NewStore(0)

	movies, err := store.Popular(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, movies)

	for i := 1; i < len(movies); i++ {
		assert.GreaterOrEqual(t, movies[i-1].VoteAverage, movies[i].VoteAverage)
	}
	assert.Equal(t, "Dune: Part Two", movies[0].Title)
}

func TestStore_TopRated(t *testing.T) {
	store := NewStore(0)

	movies, err := store.TopRated(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, movies)
	for _, movie := range movies {
		assert.GreaterOrEqual(t, movie.VoteAverage, 8.0)
	}
}

func TestStore_Trending(t *testing.T) {
	store := NewStore(0)

	movies, err := store.Trending(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, movies)
	for _, movie := range movies {
		assert.True(t, movie.Trending)
	}
}

func TestStore_Search(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	tests := []struct {
		name   string
		query  string
		titles []string
	}{
		{name: "case insensitive", query: "dune", titles: []string{"Dune: Part Two"}},
		{name: "substring", query: "land", titles: []string{"La La Land"}},
		{name: "no match", query: "zzzz", titles: []string{}},
		{name: "blank query", query: "   ", titles: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movies, err := store.Search(ctx, tt.query)
			require.NoError(t, err)
			titles := make([]string, 0, len(movies))
			for _, movie := range movies {
				titles = append(titles, movie.Title)
			}
			assert.Equal(t, tt.titles, titles)
		})
	}
}
