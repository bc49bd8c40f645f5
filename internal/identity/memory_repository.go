package identity

import (
	"context"
	"fmt"
	"sync"

	"cinecircle/internal/common"
	"cinecircle/internal/dbmysql"
)

// memoryRepository keeps user records in process memory. It backs tests and
// lets the service run without a database, the way the original deployment
// fabricated accounts on the fly.
type memoryRepository struct {
	mu    sync.RWMutex
	users map[string]*dbmysql.User
}

func NewMemoryUserRepository() UserRepository {
	return &memoryRepository{users: make(map[string]*dbmysql.User)}
}

func (r *memoryRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.UserID] = &cp
	return nil
}

func (r *memoryRepository) GetUserByID(ctx context.Context, userID string) (*dbmysql.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[userID]
	if !ok || user.Status != "active" {
		return nil, fmt.Errorf("user %s: %w", userID, common.ErrNotFound)
	}
	cp := *user
	return &cp, nil
}

func (r *memoryRepository) GetUserByEmail(ctx context.Context, email string) (*dbmysql.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Email == email && user.Status == "active" {
			cp := *user
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, common.ErrNotFound)
}

func (r *memoryRepository) UpdateUser(ctx context.Context, user *dbmysql.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.UserID]; !ok {
		return fmt.Errorf("user %s: %w", user.UserID, common.ErrNotFound)
	}
	cp := *user
	r.users[user.UserID] = &cp
	return nil
}

func (r *memoryRepository) CheckUserExists(ctx context.Context, username, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Username == username || user.Email == email {
			return true, nil
		}
	}
	return false, nil
}
