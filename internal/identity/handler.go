package identity

import (
	"encoding/json"
	"net/http"

	"cinecircle/internal/common"
	"cinecircle/internal/dbmysql"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// Handler exposes the auth/profile operations over JSON.
type Handler struct {
	service  Service
	validate *validator.Validate
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, validate: validator.New()}
}

// RegisterRoutes mounts the auth routes. Register and login are public;
// profile requires a session token.
func RegisterRoutes(r *mux.Router, service Service) {
	h := NewHandler(service)

	auth := r.PathPrefix("/api/auth").Subrouter()
	auth.HandleFunc("/register", h.HandleRegister).Methods("POST")
	auth.HandleFunc("/login", h.HandleLogin).Methods("POST")

	profile := r.PathPrefix("/api/auth/profile").Subrouter()
	profile.Use(common.AuthMiddleware)
	profile.HandleFunc("", h.HandleGetProfile).Methods("GET")
	profile.HandleFunc("", h.HandleUpdateProfile).Methods("PUT")
}

type authResponse struct {
	Token string        `json:"token"`
	User  *dbmysql.User `json:"user"`
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=6"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, token, err := h.service.Register(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	common.WriteJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, token, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	common.WriteJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}

func (h *Handler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}
	user, err := h.service.GetProfile(r.Context(), claims.UserID)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user)
}

func (h *Handler) HandleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := common.ClaimsFrom(r.Context())
	if !ok {
		http.Error(w, "authorization required", http.StatusUnauthorized)
		return
	}

	var req struct {
		Email  string  `json:"email"`
		Bio    string  `json:"bio"`
		Avatar *string `json:"avatar"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request payload", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdateProfile(r.Context(), claims.UserID, req.Email, req.Bio, req.Avatar); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "profile updated"})
}
