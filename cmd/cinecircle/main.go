package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"cinecircle/internal/activity"
	"cinecircle/internal/catalog"
	"cinecircle/internal/common"
	"cinecircle/internal/config"
	"cinecircle/internal/dbmongo"
	"cinecircle/internal/dbmysql"
	"cinecircle/internal/di"
	"cinecircle/internal/identity"
	"cinecircle/internal/notif"
	"cinecircle/internal/recs"
	"cinecircle/internal/review"
	"cinecircle/internal/social"
	"cinecircle/internal/watchlist"
)

func main() {
	cfg := config.LoadConfig()

	// User accounts live in MySQL when one is reachable; everything else is
	// in-memory, so the server still comes up without a database.
	var userRepo identity.UserRepository
	if db, err := dbmysql.NewMySQL(cfg); err != nil {
		log.Printf("mysql unavailable, falling back to in-memory users: %v", err)
		userRepo = identity.NewMemoryUserRepository()
	} else {
		userRepo = identity.NewUserRepository(db)
	}

	var posters *dbmongo.PosterStorage
	if cfg.MongoDB.Enabled {
		mongoClient, err := dbmongo.NewMongoConnection(cfg)
		if err != nil {
			log.Printf("mongodb unavailable, poster uploads disabled: %v", err)
		} else {
			defer mongoClient.Close(context.Background())
			posters = dbmongo.NewPosterStorage(mongoClient)
			log.Println("connected to MongoDB, poster storage enabled")
		}
	}

	app := di.InitializeApp(cfg, userRepo)
	defer app.Notif.Shutdown()

	router := mux.NewRouter()
	router.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	identity.RegisterRoutes(router, app.Identity)
	social.RegisterRoutes(router, app.Social)
	recs.RegisterRoutes(router, app.Recs)
	watchlist.RegisterRoutes(router, app.Watchlist)
	review.RegisterRoutes(router, app.Review)
	notif.RegisterRoutes(router, app.Notif)
	activity.RegisterRoutes(router, app.Activity, app.Social)
	catalog.RegisterRoutes(router, app.Catalog, posters)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:         cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:      c.Handler(router),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	go func() {
		log.Printf("cinecircle listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("forced shutdown: %v", err)
	}
	log.Println("server stopped")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "cinecircle",
	})
}
