package ports

import "context"

// Notification kinds handled by the notifier.
const (
	NotifyVerification    = "verification"
	NotifyRequestResolved = "request_resolved"
)

// NotificationInput is the DTO passed from services to the notifier via the
// dispatcher. Email identifies the recipient and is the sharding key, so all
// notifications to one recipient are processed in order.
type NotificationInput struct {
	Kind      string
	Email     string
	RequestID string
	Status    string
}

// NotifierService processes queued notifications.
type NotifierService interface {
	Process(ctx context.Context, n NotificationInput) error
}

// NotificationEnqueuer is the fire-and-forget side services use to hand
// notifications to the dispatcher.
type NotificationEnqueuer interface {
	Enqueue(n NotificationInput)
}
