package social

import (
	"context"
	"testing"
	"time"

	"cinecircle/internal/common"
	"cinecircle/internal/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profile(id, username string) identity.Profile {
	return identity.Profile{ID: id, Username: username}
}

func TestStore_CreateRequest_DuplicatePair(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	_, err := store.CreateRequest(ctx, profile("u1", "alice"), "u2")
	require.NoError(t, err)

	t.Run("same direction", func(t *testing.T) {
		_, err := store.CreateRequest(ctx, profile("u1", "alice"), "u2")
		require.ErrorIs(t, err, common.ErrDuplicateRequest)
	})

	t.Run("reverse direction", func(t *testing.T) {
		_, err := store.CreateRequest(ctx, profile("u2", "bob"), "u1")
		require.ErrorIs(t, err, common.ErrDuplicateRequest)
	})

	t.Run("unrelated pair is fine", func(t *testing.T) {
		_, err := store.CreateRequest(ctx, profile("u1", "alice"), "u3")
		require.NoError(t, err)
	})
}

func TestStore_CreateRequest_AfterResolution(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	req, err := store.CreateRequest(ctx, profile("u1", "alice"), "u2")
	require.NoError(t, err)
	require.NoError(t, store.DeclineRequest(ctx, req.ID))

	// Once the pending request is resolved the pair may try again.
	_, err = store.CreateRequest(ctx, profile("u2", "bob"), "u1")
	require.NoError(t, err)
}

func TestStore_AcceptRequest_CreatesMirroredEdges(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	req, err := store.CreateRequest(ctx, profile("u1", "alice"), "u2")
	require.NoError(t, err)

	accepted, err := store.AcceptRequest(ctx, req.ID, profile("u2", "bob"))
	require.NoError(t, err)
	assert.Equal(t, RequestAccepted, accepted.Status)

	receiverFriends, err := store.ListFriends(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, receiverFriends, 1)
	assert.Equal(t, "u1", receiverFriends[0].FriendID)
	assert.Equal(t, "alice", receiverFriends[0].Username)

	senderFriends, err := store.ListFriends(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, senderFriends, 1)
	assert.Equal(t, "u2", senderFriends[0].FriendID)
	assert.Equal(t, "bob", senderFriends[0].Username)
}

func TestStore_AcceptRequest_Terminal(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	t.Run("unknown id", func(t *testing.T) {
		_, err := store.AcceptRequest(ctx, "nope", profile("u2", "bob"))
		require.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("already accepted", func(t *testing.T) {
		req, err := store.CreateRequest(ctx, profile("u1", "alice"), "u2")
		require.NoError(t, err)
		_, err = store.AcceptRequest(ctx, req.ID, profile("u2", "bob"))
		require.NoError(t, err)

		_, err = store.AcceptRequest(ctx, req.ID, profile("u2", "bob"))
		require.ErrorIs(t, err, common.ErrNotFound)

		// No extra edges from the failed re-accept.
		friends, err := store.ListFriends(ctx, "u2")
		require.NoError(t, err)
		assert.Len(t, friends, 1)
	})

	t.Run("declined", func(t *testing.T) {
		req, err := store.CreateRequest(ctx, profile("u3", "carol"), "u4")
		require.NoError(t, err)
		require.NoError(t, store.DeclineRequest(ctx, req.ID))

		_, err = store.AcceptRequest(ctx, req.ID, profile("u4", "dan"))
		require.ErrorIs(t, err, common.ErrNotFound)

		friends, err := store.ListFriends(ctx, "u4")
		require.NoError(t, err)
		assert.Empty(t, friends)
	})
}

func TestStore_PendingRequestsFor(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	r1, err := store.CreateRequest(ctx, profile("u1", "alice"), "u3")
	require.NoError(t, err)
	r2, err := store.CreateRequest(ctx, profile("u2", "bob"), "u3")
	require.NoError(t, err)
	_, err = store.CreateRequest(ctx, profile("u1", "alice"), "u4")
	require.NoError(t, err)

	pending, err := store.PendingRequestsFor(ctx, "u3")
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, r1.ID, pending[0].ID)
	assert.Equal(t, r2.ID, pending[1].ID)

	_, err = store.AcceptRequest(ctx, r1.ID, profile("u3", "carol"))
	require.NoError(t, err)

	pending, err = store.PendingRequestsFor(ctx, "u3")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, r2.ID, pending[0].ID)
}

func TestStore_RemoveFriend(t *testing.T) {
	store := NewStore(0)
	ctx := context.Background()

	req, err := store.CreateRequest(ctx, profile("u1", "alice"), "u2")
	require.NoError(t, err)
	_, err = store.AcceptRequest(ctx, req.ID, profile("u2", "bob"))
	require.NoError(t, err)

	t.Run("removes both directions", func(t *testing.T) {
		require.NoError(t, store.RemoveFriend(ctx, "u1", "u2"))

		friends, err := store.ListFriends(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, friends)

		friends, err = store.ListFriends(ctx, "u2")
		require.NoError(t, err)
		assert.Empty(t, friends)
	})

	t.Run("missing edge", func(t *testing.T) {
		err := store.RemoveFriend(ctx, "u1", "u2")
		require.ErrorIs(t, err, common.ErrNotFound)
	})
}

func TestStore_CancelledContext(t *testing.T) {
	store := NewStore(50 * time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.CreateRequest(ctx, profile("u1", "alice"), "u2")
	require.ErrorIs(t, err, context.Canceled)

	// The cancelled call must not have left a partial write behind.
	pending, err := store.PendingRequestsFor(context.Background(), "u2")
	require.NoError(t, err)
	assert.Empty(t, pending)
}
