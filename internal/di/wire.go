//go:build wireinject
// +build wireinject

package di

import (
	"cinecircle/internal/activity"
	"cinecircle/internal/catalog"
	"cinecircle/internal/common"
	"cinecircle/internal/config"
	"cinecircle/internal/identity"
	"cinecircle/internal/notif"
	"cinecircle/internal/recs"
	"cinecircle/internal/review"
	"cinecircle/internal/social"
	"cinecircle/internal/watchlist"

	"github.com/google/wire"
)

// InitializeApp wires the full service graph on top of whichever user
// repository the caller chose (MySQL-backed or in-memory).
func InitializeApp(cfg *config.Config, userRepo identity.UserRepository) *App {
	wire.Build(
		provideLatency,
		provideNotifService,
		catalog.NewStore,
		activity.NewStore,
		notif.NewStore,
		social.NewStore,
		recs.NewStore,
		watchlist.NewStore,
		review.NewStore,
		identity.NewService,
		social.NewService,
		recs.NewService,
		watchlist.NewService,
		review.NewService,
		wire.Bind(new(identity.Directory), new(identity.Service)),
		wire.Bind(new(common.NotificationPublisher), new(*notif.Service)),
		wire.Bind(new(recs.MovieResolver), new(*catalog.Store)),
		wire.Bind(new(watchlist.MovieResolver), new(*catalog.Store)),
		wire.Bind(new(review.MovieResolver), new(*catalog.Store)),
		wire.Bind(new(recs.WatchlistSource), new(watchlist.Service)),
		wire.Bind(new(recs.FriendSource), new(social.Service)),
		wire.Struct(new(App), "*"),
	)
	return &App{}
}
