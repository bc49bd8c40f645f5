package recs

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

	recs := r.PathPrefix("/api/recommendations").Subrouter()
	recs.Use(common.AuthMiddleware)
	recs.HandleFunc("", h.HandleSend).Methods("POST")
	recs.HandleFunc("", h.HandleList).Methods("GET")
	recs.HandleFunc("/personalized", h.HandlePersonalized).Methods("GET")
	recs.HandleFunc("/{id}/status", h.HandleUpdateStatus).Methods("PATCH")
}

func (h *Handler) HandleSend(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req struct {
		ToUserID string `json:"toUserId" validate:"required"`
		MovieID  string `json:"movieId" validate:"required"`
		Message  string `json:"message"`
		Priority string `json:"priority" validate:"omitempty,oneof=low medium high"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rec, err := h.service.Send(r.Context(), claims.UserID, req.ToUserID, req.MovieID, req.Message, Priority(req.Priority))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, rec)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	recommendations, err := h.service.ListForUser(r.Context(), claims.UserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, recommendations)
}

func (h *Handler) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Status string `json:"status" validate:"required,oneof=accepted declined watched"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), mux.Vars(r)["id"], Status(req.Status)); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "status updated"})
}

func (h *Handler) HandlePersonalized(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	recommendations, err := h.service.Personalized(r.Context(), claims.UserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, recommendations)
}
