package review

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

	// Reading reviews is public, writing requires a session.
	public := r.PathPrefix("/api/reviews").Subrouter()
	public.HandleFunc("/movie/{movieId}", h.HandleListForMovie).Methods("GET")
	public.HandleFunc("/movie/{movieId}/stats", h.HandleStats).Methods("GET")

	protected := r.PathPrefix("/api/reviews").Subrouter()
	protected.Use(common.AuthMiddleware)
	protected.HandleFunc("", h.HandleAdd).Methods("POST")
	protected.HandleFunc("/{id}/react", h.HandleReact).Methods("POST")
	protected.HandleFunc("/{id}/reaction", h.HandleUserReaction).Methods("GET")
}

func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req struct {
		MovieID        string `json:"movieId" validate:"required"`
		Rating         int    `json:"rating" validate:"required,min=1,max=5"`
		Content        string `json:"content" validate:"required"`
		SpoilerWarning bool   `json:"spoilerWarning"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Add(r.Context(), claims.UserID, req.MovieID, req.Rating, req.Content, req.SpoilerWarning)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, created)
}

func (h *Handler) HandleListForMovie(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListForMovie(r.Context(), mux.Vars(r)["movieId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, reviews)
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.StatsForMovie(r.Context(), mux.Vars(r)["movieId"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, stats)
}

func (h *Handler) HandleReact(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req struct {
		Type string `json:"type" validate:"required,oneof=like dislike"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	updated, err := h.service.React(r.Context(), claims.UserID, mux.Vars(r)["id"], ReactionType(req.Type))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, updated)
}

func (h *Handler) HandleUserReaction(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	reaction, err := h.service.UserReaction(r.Context(), claims.UserID, mux.Vars(r)["id"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, reaction)
}
