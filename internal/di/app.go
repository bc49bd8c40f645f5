package di

import (
	"cinecircle/internal/activity"
	"cinecircle/internal/catalog"
	"cinecircle/internal/config"
	"cinecircle/internal/identity"
	"cinecircle/internal/notif"
	"cinecircle/internal/recs"
	"cinecircle/internal/review"
	"cinecircle/internal/social"
	"cinecircle/internal/watchlist"
)

// App bundles the wired services the server mounts routes for.
type App struct {
	Config    *config.Config
	Identity  identity.Service
	Social    social.Service
	Recs      recs.Service
	Watchlist watchlist.Service
	Review    review.Service
	Notif     *notif.Service
	Activity  *activity.Store
	Catalog   *catalog.Store
}
