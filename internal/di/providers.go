package di

import (
	"time"

	"cinecircle/internal/config"
	"cinecircle/internal/notif"
)

func provideLatency(cfg *config.Config) time.Duration {
	return cfg.Store.SimulatedLatency
}

func provideNotifService(cfg *config.Config, store *notif.Store) *notif.Service {
	return notif.NewService(store, cfg.Notification.Workers, cfg.Notification.ChannelBufferSize)
}
