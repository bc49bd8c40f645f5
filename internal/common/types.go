package common

type NotificationType string

const (
	FriendRequestType  NotificationType = "friend_request"
	RecommendationType NotificationType = "movie_recommendation"
	ReviewLikeType     NotificationType = "review_like"
	FriendActivityType NotificationType = "new_friend_activity"
	SystemType         NotificationType = "system"
)

type NotificationMetadata map[string]interface{}

// NotificationEvent is what the domain services publish when something
// notification-worthy happens. Observers turn events into stored
// notifications (or drop them, depending on the receiver's settings).
type NotificationEvent struct {
	Type          NotificationType
	UserID        string
	TriggerUserID string
	Title         string
	Message       string
	Metadata      NotificationMetadata
}

type Observer interface {
	Update(event NotificationEvent) error
	Name() string
}

type Subject interface {
	Subscribe(observer Observer)
	Unsubscribe(observer Observer)
	Notify(event NotificationEvent)
	NotifyAsync(event NotificationEvent)
}

// NotificationPublisher is the slim face of the notification service that the
// other domain services hold. Keeps social/recs/review from importing notif.
type NotificationPublisher interface {
	Publish(event NotificationEvent)
}
