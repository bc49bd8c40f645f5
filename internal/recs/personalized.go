package recs

import (
	"context"
	"fmt"
	"sort"
)

type RecommendationBasis struct {
	Type string                 `json:"type"` // genre, trending, similar_users
	Data map[string]interface{} `json:"data"`
}

type PersonalizedRecommendation struct {
	MovieID string                `json:"movieId"`
	Title   string                `json:"title"`
	Score   float64               `json:"score"`
	Reasons []string              `json:"reasons"`
	BasedOn []RecommendationBasis `json:"basedOn"`
}

// Personalized scores the catalog against the user's watchlist genres and
// friend count. Deterministic: same inputs, same output.
func (s *service) Personalized(ctx context.Context, userID string) ([]PersonalizedRecommendation, error) {
	watchlistIDs, err := s.watchlist.MovieIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load watchlist: %w", err)
	}
	friendIDs, err := s.friends.FriendIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load friends: %w", err)
	}

	onWatchlist := make(map[string]bool, len(watchlistIDs))
	likedGenres := make(map[string]bool)
	for _, id := range watchlistIDs {
		onWatchlist[id] = true
		if movie, err := s.movies.ByID(ctx, id); err == nil {
			for _, genre := range movie.Genres {
				likedGenres[genre] = true
			}
		}
	}

	candidates, err := s.movies.Popular(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]PersonalizedRecommendation, 0)
	for _, movie := range candidates {
		if onWatchlist[movie.ID] {
			continue
		}

		rec := PersonalizedRecommendation{MovieID: movie.ID, Title: movie.Title}
		rec.Score = movie.VoteAverage / 10 * 0.6

		for _, genre := range movie.Genres {
			if likedGenres[genre] {
				rec.Score += 0.2
				rec.Reasons = append(rec.Reasons, fmt.Sprintf("Because you watch %s movies", genre))
				rec.BasedOn = append(rec.BasedOn, RecommendationBasis{
					Type: "genre",
					Data: map[string]interface{}{"genre": genre},
				})
				break
			}
		}

		if movie.Trending && len(friendIDs) > 0 {
			rec.Score += 0.1
			rec.Reasons = append(rec.Reasons, "Trending among your friends")
			rec.BasedOn = append(rec.BasedOn, RecommendationBasis{
				Type: "trending",
				Data: map[string]interface{}{"friendsWatching": len(friendIDs)},
			})
		}

		if len(rec.Reasons) == 0 {
			rec.Reasons = append(rec.Reasons, "Highly rated by similar users")
			rec.BasedOn = append(rec.BasedOn, RecommendationBasis{
				Type: "similar_users",
				Data: map[string]interface{}{"rating": movie.VoteAverage},
			})
		}

		result = append(result, rec)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Score > result[j].Score
	})
	if len(result) > 3 {
		result = result[:3]
	}
	return result, nil
}
