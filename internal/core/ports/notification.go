package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chefpantry/chefpantry/internal/core/domain/notification"
)

// NotificationRepository defines the interface for notification data operations
type NotificationRepository interface {
	Create(ctx context.Context, n *notification.Notification) error
	List(ctx context.Context, userID uuid.UUID, filter *notification.Filter) ([]*notification.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
	// DeleteReadBefore prunes read notifications older than cutoff and
	// returns the number removed.
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// NotificationService defines the interface for notification business logic
type NotificationService interface {
	Notify(ctx context.Context, userID uuid.UUID, typ notification.Type, title, body string, refID *uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, filter *notification.Filter) ([]*notification.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}
