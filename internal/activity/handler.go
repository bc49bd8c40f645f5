package activity

import (
	"context"
	"net/http"

	"cinecircle/internal/common"

	"github.com/gorilla/mux"
)

// FriendSource supplies the requesting user's current friend ids. The store
// itself never queries the friend graph; the caller does.
type FriendSource interface {
	FriendIDs(ctx context.Context, userID string) ([]string, error)
}

type Handler struct {
	store   *Store
	friends FriendSource
}

func NewHandler(store *Store, friends FriendSource) *Handler {
	return &Handler{store: store, friends: friends}
}

func RegisterRoutes(r *mux.Router, store *Store, friends FriendSource) {
	h := NewHandler(store, friends)

	feed := r.PathPrefix("/api/activity").Subrouter()
	feed.Use(common.AuthMiddleware)
	feed.HandleFunc("", h.HandleFeed).Methods("GET")
}

func (h *Handler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	friendIDs, err := h.friends.FriendIDs(r.Context(), claims.UserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	events, err := h.store.ListForUser(r.Context(), claims.UserID, friendIDs)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, events)
}
