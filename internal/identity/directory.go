package identity

import "context"

// Profile is the minimal identity other stores need: a resolvable display
// name and avatar for a user id.
type Profile struct {
	ID       string  `json:"id"`
	Username string  `json:"username"`
	Avatar   *string `json:"avatar,omitempty"`
}

// Directory resolves user ids to profiles. The friend graph uses it to stamp
// real display names on both sides of an accepted friendship instead of a
// placeholder.
type Directory interface {
	Resolve(ctx context.Context, userID string) (Profile, error)
}
