package social

import (
	"context"
	"fmt"

	"cinecircle/internal/activity"
	"cinecircle/internal/common"
	"cinecircle/internal/identity"
)

type Service interface {
	SendRequest(ctx context.Context, fromUserID, toUserID string) (*FriendRequest, error)
	IncomingRequests(ctx context.Context, userID string) ([]FriendRequest, error)
	AcceptRequest(ctx context.Context, requestID string) error
	DeclineRequest(ctx context.Context, requestID string) error
	ListFriends(ctx context.Context, userID string) ([]FriendEdge, error)
	FriendIDs(ctx context.Context, userID string) ([]string, error)
	RemoveFriend(ctx context.Context, userID, friendID string) error
}

type service struct {
	store     *Store
	directory identity.Directory
	feed      *activity.Store
	notifier  common.NotificationPublisher
}

func NewService(store *Store, directory identity.Directory, feed *activity.Store, notifier common.NotificationPublisher) Service {
	return &service{store: store, directory: directory, feed: feed, notifier: notifier}
}

func (s *service) SendRequest(ctx context.Context, fromUserID, toUserID string) (*FriendRequest, error) {
	if fromUserID == toUserID {
		return nil, fmt.Errorf("friend request: %w", common.ErrSelfTarget)
	}

	from, err := s.directory.Resolve(ctx, fromUserID)
	if err != nil {
		return nil, fmt.Errorf("resolve sender: %w", err)
	}
	if _, err := s.directory.Resolve(ctx, toUserID); err != nil {
		return nil, fmt.Errorf("resolve receiver: %w", err)
	}

	request, err := s.store.CreateRequest(ctx, from, toUserID)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.Publish(common.NotificationEvent{
			Type:          common.FriendRequestType,
			UserID:        toUserID,
			TriggerUserID: fromUserID,
			Title:         "New Friend Request",
			Message:       fmt.Sprintf("%s sent you a friend request", from.Username),
			Metadata:      common.NotificationMetadata{"requestId": request.ID},
		})
	}
	return request, nil
}

func (s *service) IncomingRequests(ctx context.Context, userID string) ([]FriendRequest, error) {
	return s.store.PendingRequestsFor(ctx, userID)
}

// AcceptRequest resolves the receiver's real profile before the mutation so
// the mirrored edge carries their display name, then appends the
// became-friends event attributed to the accepting user.
func (s *service) AcceptRequest(ctx context.Context, requestID string) error {
	request, err := s.store.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}

	accepter, err := s.directory.Resolve(ctx, request.ToUserID)
	if err != nil {
		return fmt.Errorf("resolve accepter: %w", err)
	}

	accepted, err := s.store.AcceptRequest(ctx, requestID, accepter)
	if err != nil {
		return err
	}

	_, err = s.feed.Append(ctx, accepter.ID, accepter.Username, activity.BecameFriends, activity.EventData{
		FriendID:   accepted.FromUserID,
		FriendName: accepted.FromUsername,
	})
	return err
}

func (s *service) DeclineRequest(ctx context.Context, requestID string) error {
	return s.store.DeclineRequest(ctx, requestID)
}

func (s *service) ListFriends(ctx context.Context, userID string) ([]FriendEdge, error) {
	return s.store.ListFriends(ctx, userID)
}

// FriendIDs supplies the current friend set for activity feed scoping.
func (s *service) FriendIDs(ctx context.Context, userID string) ([]string, error) {
	edges, err := s.store.ListFriends(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(edges))
	for _, edge := range edges {
		ids = append(ids, edge.FriendID)
	}
	return ids, nil
}

func (s *service) RemoveFriend(ctx context.Context, userID, friendID string) error {
	return s.store.RemoveFriend(ctx, userID, friendID)
}
