package watchlist

import (
	"encoding/json"
	"net/http"

	"cinecircle/internal/common"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

func RegisterRoutes(r *mux.Router, service Service) {
	h := NewHandler(service)

	watchlist := r.PathPrefix("/api/watchlist").Subrouter()
	watchlist.Use(common.AuthMiddleware)
	watchlist.HandleFunc("", h.HandleAdd).Methods("POST")
	watchlist.HandleFunc("", h.HandleList).Methods("GET")
	watchlist.HandleFunc("/contains/{movieId}", h.HandleContains).Methods("GET")
	watchlist.HandleFunc("/{itemId}", h.HandleRemove).Methods("DELETE")
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req struct {
		MovieID string `json:"movieId" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.service.Add(r.Context(), claims.UserID, req.MovieID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, item)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	items, err := h.service.List(r.Context(), claims.UserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) HandleContains(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	contains, err := h.service.Contains(r.Context(), claims.UserID, mux.Vars(r)["movieId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]bool{"inWatchlist": contains})
}

func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	if err := h.service.Remove(r.Context(), claims.UserID, mux.Vars(r)["itemId"]); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "removed from watchlist"})
}
