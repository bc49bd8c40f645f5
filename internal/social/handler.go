package social

import (
	"encoding/json"
	"net/http"

	"cinecircle/internal/common"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Handler exposes the friend graph over JSON. All routes require a session;
// the acting user always comes from the token, never the payload.
type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

func RegisterRoutes(r *mux.Router, service Service) {
	h := NewHandler(service)

	friends := r.PathPrefix("/api/friends").Subrouter()
	friends.Use(common.AuthMiddleware)
	friends.HandleFunc("/requests", h.HandleSendRequest).Methods("POST")
	friends.HandleFunc("/requests", h.HandleListRequests).Methods("GET")
	friends.HandleFunc("/requests/{id}/accept", h.HandleAcceptRequest).Methods("POST")
	friends.HandleFunc("/requests/{id}/decline", h.HandleDeclineRequest).Methods("POST")
	friends.HandleFunc("", h.HandleListFriends).Methods("GET")
	friends.HandleFunc("/{friendId}", h.HandleRemoveFriend).Methods("DELETE")
}

func (h *Handler) HandleSendRequest(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req struct {
		ToUserID string `json:"toUserId" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	request, err := h.service.SendRequest(r.Context(), claims.UserID, req.ToUserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, request)
}

func (h *Handler) HandleListRequests(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	requests, err := h.service.IncomingRequests(r.Context(), claims.UserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, requests)
}

func (h *Handler) HandleAcceptRequest(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["id"]
	if err := h.service.AcceptRequest(r.Context(), requestID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "friend request accepted"})
}

func (h *Handler) HandleDeclineRequest(w http.ResponseWriter, r *http.Request) {
	requestID := mux.Vars(r)["id"]
	if err := h.service.DeclineRequest(r.Context(), requestID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "friend request declined"})
}

func (h *Handler) HandleListFriends(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	friends, err := h.service.ListFriends(r.Context(), claims.UserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, friends)
}

func (h *Handler) HandleRemoveFriend(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	friendID := mux.Vars(r)["friendId"]
	if err := h.service.RemoveFriend(r.Context(), claims.UserID, friendID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "friend removed"})
}
