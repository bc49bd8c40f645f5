package catalog

import (
	"net/http"

	"cinecircle/internal/common"
	"cinecircle/internal/dbmongo"

	"github.com/gorilla/mux"
)

// Handler serves the movie catalog. Browsing is public; posters fall back to
// the seeded URL when no GridFS store is configured.
type Handler struct {
	store   *Store
	posters *dbmongo.PosterStorage
}

func NewHandler(store *Store, posters *dbmongo.PosterStorage) *Handler {
	return &Handler{store: store, posters: posters}
}

func RegisterRoutes(r *mux.Router, store *Store, posters *dbmongo.PosterStorage) {
	h := NewHandler(store, posters)

	movies := r.PathPrefix("/api/movies").Subrouter()
	movies.HandleFunc("/trending", h.HandleTrending).Methods("GET")
	movies.HandleFunc("/popular", h.HandlePopular).Methods("GET")
	movies.HandleFunc("/top-rated", h.HandleTopRated).Methods("GET")
	movies.HandleFunc("/search", h.HandleSearch).Methods("GET")
	movies.HandleFunc("/{id}", h.HandleByID).Methods("GET")
	movies.HandleFunc("/{id}/poster", h.HandlePoster).Methods("GET")

	// Poster management needs a session; browsing does not.
	posterAdmin := r.PathPrefix("/api/movies").Subrouter()
	posterAdmin.Use(common.AuthMiddleware)
	posterAdmin.HandleFunc("/{id}/poster", h.HandleUploadPoster).Methods("POST")
	posterAdmin.HandleFunc("/posters/{fileId}", h.HandleDeletePoster).Methods("DELETE")
}

func (h *Handler) HandleTrending(w http.ResponseWriter, r *http.Request) {
	movies, err := h.store.Trending(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, movies)
}

func (h *Handler) HandlePopular(w http.ResponseWriter, r *http.Request) {
	movies, err := h.store.Popular(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, movies)
}

func (h *Handler) HandleTopRated(w http.ResponseWriter, r *http.Request) {
	movies, err := h.store.TopRated(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, movies)
}

func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	movies, err := h.store.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, movies)
}

func (h *Handler) HandleByID(w http.ResponseWriter, r *http.Request) {
	movie, err := h.store.ByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, movie)
}

func (h *Handler) HandlePoster(w http.ResponseWriter, r *http.Request) {
	movieID := mux.Vars(r)["id"]

	movie, err := h.store.ByID(r.Context(), movieID)
	if err != nil {
		common.WriteError(w, err)
		return
	}

	if h.posters == nil {
		// No GridFS store configured; send the client to the seeded URL.
		http.Redirect(w, r, movie.PosterPath, http.StatusFound)
		return
	}

	data, file, err := h.posters.ByMovieID(r.Context(), movieID)
	if err != nil {
		http.Redirect(w, r, movie.PosterPath, http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", file.MimeType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) HandleUploadPoster(w http.ResponseWriter, r *http.Request) {
	if h.posters == nil {
		http.Error(w, "poster storage not enabled", http.StatusServiceUnavailable)
		return
	}

	movieID := mux.Vars(r)["id"]
	if _, err := h.store.ByID(r.Context(), movieID); err != nil {
		common.WriteError(w, err)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "invalid multipart payload", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("poster")
	if err != nil {
		http.Error(w, "poster file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	stored, err := h.posters.Upload(r.Context(), movieID, header.Filename, mimeType, file)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, stored)
}

func (h *Handler) HandleDeletePoster(w http.ResponseWriter, r *http.Request) {
	if h.posters == nil {
		http.Error(w, "poster storage not enabled", http.StatusServiceUnavailable)
		return
	}

	if err := h.posters.Delete(r.Context(), mux.Vars(r)["fileId"]); err != nil {
		common.WriteError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"message": "poster deleted"})
}
