package social

import (
	"context"
	"fmt"
	"sync"
	"time"

	"cinecircle/internal/common"
	"cinecircle/internal/identity"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"
)

// FriendRequest is a pending proposal from one user to another. Accepted and
// declined records are retained, not deleted; both transitions are terminal.
type FriendRequest struct {
	ID           string        `json:"id"`
	FromUserID   string        `json:"fromUserId"`
	FromUsername string        `json:"fromUsername"`
	FromAvatar   *string       `json:"fromAvatar,omitempty"`
	ToUserID     string        `json:"toUserId"`
	Status       RequestStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

// FriendEdge is one directional record asserting UserID considers FriendID a
// friend. Edges are created in mirrored pairs when a request is accepted.
type FriendEdge struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	FriendID  string    `json:"friendId"`
	Username  string    `json:"username"`
	Avatar    *string   `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store owns the friend request table and the per-user friend lists. One
// mutex guards both, so the duplicate-pair scan and the insert it guards are
// a single atomic step, as are the accept-then-create-edges sequences.
type Store struct {
	mu       sync.RWMutex
	requests []FriendRequest
	friends  map[string][]FriendEdge
	latency  time.Duration
}

func NewStore(latency time.Duration) *Store {
	return &Store{friends: make(map[string][]FriendEdge), latency: latency}
}

// CreateRequest inserts a pending request after checking that no pending
// request exists between the pair in either direction.
func (s *Store) CreateRequest(ctx context.Context, from identity.Profile, toUserID string) (*FriendRequest, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, req := range s.requests {
		if req.Status != RequestPending {
			continue
		}
		if (req.FromUserID == from.ID && req.ToUserID == toUserID) ||
			(req.FromUserID == toUserID && req.ToUserID == from.ID) {
			return nil, fmt.Errorf("between %s and %s: %w", from.ID, toUserID, common.ErrDuplicateRequest)
		}
	}

	request := FriendRequest{
		ID:           uuid.NewString(),
		FromUserID:   from.ID,
		FromUsername: from.Username,
		FromAvatar:   from.Avatar,
		ToUserID:     toUserID,
		Status:       RequestPending,
		CreatedAt:    time.Now(),
	}
	s.requests = append(s.requests, request)

	cp := request
	return &cp, nil
}

// PendingRequestsFor returns the pending requests addressed to userID, in
// insertion order.
func (s *Store) PendingRequestsFor(ctx context.Context, userID string) ([]FriendRequest, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]FriendRequest, 0)
	for _, req := range s.requests {
		if req.ToUserID == userID && req.Status == RequestPending {
			result = append(result, req)
		}
	}
	return result, nil
}

// GetRequest returns a copy of the pending request with the given id.
// Accepted and declined requests are treated as gone: both transitions are
// terminal, so a stale id fails NotFound rather than resurrecting the record.
func (s *Store) GetRequest(ctx context.Context, requestID string) (*FriendRequest, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.pendingIndex(requestID)
	if idx < 0 {
		return nil, fmt.Errorf("friend request %s: %w", requestID, common.ErrNotFound)
	}
	cp := s.requests[idx]
	return &cp, nil
}

// AcceptRequest marks the pending request accepted and creates the mirrored
// friend edges in the same atomic step. The caller resolves the accepting
// user's profile up front so the reverse edge carries a real display name.
func (s *Store) AcceptRequest(ctx context.Context, requestID string, accepter identity.Profile) (*FriendRequest, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.pendingIndex(requestID)
	if idx < 0 {
		return nil, fmt.Errorf("friend request %s: %w", requestID, common.ErrNotFound)
	}

	s.requests[idx].Status = RequestAccepted
	request := s.requests[idx]
	now := time.Now()

	// Edge owned by the receiver, pointing at the sender.
	s.friends[request.ToUserID] = append(s.friends[request.ToUserID], FriendEdge{
		ID:        uuid.NewString(),
		UserID:    request.ToUserID,
		FriendID:  request.FromUserID,
		Username:  request.FromUsername,
		Avatar:    request.FromAvatar,
		CreatedAt: now,
	})

	// Mirrored edge owned by the sender, pointing at the accepter.
	s.friends[request.FromUserID] = append(s.friends[request.FromUserID], FriendEdge{
		ID:        uuid.NewString(),
		UserID:    request.FromUserID,
		FriendID:  accepter.ID,
		Username:  accepter.Username,
		Avatar:    accepter.Avatar,
		CreatedAt: now,
	})

	cp := request
	return &cp, nil
}

// DeclineRequest marks the pending request declined. The record is retained;
// a later accept of the same id fails NotFound.
func (s *Store) DeclineRequest(ctx context.Context, requestID string) error {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.pendingIndex(requestID)
	if idx < 0 {
		return fmt.Errorf("friend request %s: %w", requestID, common.ErrNotFound)
	}
	s.requests[idx].Status = RequestDeclined
	return nil
}

func (s *Store) ListFriends(ctx context.Context, userID string) ([]FriendEdge, error) {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	edges := s.friends[userID]
	result := make([]FriendEdge, len(edges))
	copy(result, edges)
	return result, nil
}

// RemoveFriend deletes the edge userID -> friendID, failing NotFound when it
// does not exist. The mirrored edge is removed too when present; its absence
// is not an error.
func (s *Store) RemoveFriend(ctx context.Context, userID, friendID string) error {
	if err := common.SimulateLatency(ctx, s.latency); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.removeEdge(userID, friendID) {
		return fmt.Errorf("friend %s of %s: %w", friendID, userID, common.ErrNotFound)
	}
	s.removeEdge(friendID, userID)
	return nil
}

// pendingIndex and removeEdge are called with the lock held.

func (s *Store) pendingIndex(requestID string) int {
	for i, req := range s.requests {
		if req.ID == requestID && req.Status == RequestPending {
			return i
		}
	}
	return -1
}

func (s *Store) removeEdge(ownerID, friendID string) bool {
	edges := s.friends[ownerID]
	for i, edge := range edges {
		if edge.FriendID == friendID {
			s.friends[ownerID] = append(edges[:i], edges[i+1:]...)
			return true
		}
	}
	return false
}
