package notif

import (
	"encoding/json"
	"net/http"

	"cinecircle/internal/common"

	"github.com/gorilla/mux"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func RegisterRoutes(r *mux.Router, service *Service) {
	h := NewHandler(service)

	notifications := r.PathPrefix("/api/notifications").Subrouter()
	notifications.Use(common.AuthMiddleware)
	notifications.HandleFunc("", h.HandleList).Methods("GET")
	notifications.HandleFunc("/unread-count", h.HandleUnreadCount).Methods("GET")
	notifications.HandleFunc("/read-all", h.HandleMarkAllRead).Methods("POST")
	notifications.HandleFunc("/{id}/read", h.HandleMarkRead).Methods("POST")
	notifications.HandleFunc("/settings", h.HandleGetSettings).Methods("GET")
	notifications.HandleFunc("/settings", h.HandleUpdateSettings).Methods("PUT")
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	notifications, err := h.service.ListForUser(r.Context(), claims.UserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, notifications)
}

func (h *Handler) HandleUnreadCount(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	count, err := h.service.UnreadCount(r.Context(), claims.UserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]int{"unread": count})
}

func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkRead(r.Context(), mux.Vars(r)["id"]); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "notification marked read"})
}

func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	if err := h.service.MarkAllRead(r.Context(), claims.UserID); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "all notifications marked read"})
}

func (h *Handler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	settings, err := h.service.SettingsFor(r.Context(), claims.UserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, settings)
}

func (h *Handler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var settings Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateSettings(r.Context(), claims.UserID, settings); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, settings)
}
