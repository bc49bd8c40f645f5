package notif

import (
	"context"
	"fmt"
	"log"

	"cinecircle/internal/common"
)

// StoreObserver persists published events as notification records, unless the
// receiver has switched that event type off in their settings.
type StoreObserver struct {
	store *Store
}

func NewStoreObserver(store *Store) *StoreObserver {
	return &StoreObserver{store: store}
}

func (o *StoreObserver) Name() string {
	return "store_observer"
}

func (o *StoreObserver) Update(event common.NotificationEvent) error {
	ctx := context.Background()

	settings, err := o.store.SettingsFor(ctx, event.UserID)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if !settings.Allows(event.Type) {
		log.Printf("notification %s muted by settings for user %s", event.Type, event.UserID)
		return nil
	}

	if _, err := o.store.Create(ctx, event.UserID, event.Type, event.Title, event.Message, event.Metadata); err != nil {
		return fmt.Errorf("store notification: %w", err)
	}
	return nil
}
