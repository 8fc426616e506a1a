package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for notifications.
type NotificationRepository interface {
	Add(ctx context.Context, n *notification.Notification) error
	Update(ctx context.Context, n *notification.Notification) error

	// Get retrieves a notification by its identifier.
	// Returns errs.ErrObjectNotFound when no such notification exists.
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// GetPending returns up to limit pending notifications, oldest first.
	GetPending(ctx context.Context, limit int) ([]*notification.Notification, error)
}

// NotificationSender delivers a message to a recipient over every channel the
// recipient supports. The report lists each attempted channel; an error is returned
// only when sending could not be attempted at all.
type NotificationSender interface {
	Send(ctx context.Context, recipient notification.Recipient, message notification.Message) (notification.DeliveryReport, error)
}
