package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/internal/core/domain/notification"
	"github.com/chefpantry/chefpantry/internal/core/ports"
	"github.com/chefpantry/chefpantry/internal/infrastructure/db"
)

type notificationRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewNotificationRepository creates a new instance of NotificationRepository
func NewNotificationRepository(database *db.Database, logger *logrus.Logger) ports.NotificationRepository {
	return &notificationRepository{
		db:     database,
		logger: logger,
	}
}

// Create inserts a new notification row
func (r *notificationRepository) Create(ctx context.Context, n *notification.Notification) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO notifications (id, user_id, type, title, body, ref_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.DB.ExecContext(ctx, query,
		n.ID, n.UserID, n.Type, n.Title, n.Body, n.RefID, n.CreatedAt)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"user_id": n.UserID, "type": n.Type}).WithError(err).Error("db: failed to insert notification")
		}
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{"user_id": n.UserID, "type": n.Type}).Debug("db: notification inserted")
	}
	return nil
}

// List retrieves a user's notifications, newest first
func (r *notificationRepository) List(ctx context.Context, userID uuid.UUID, filter *notification.Filter) ([]*notification.Notification, error) {
	args := []interface{}{userID}
	query := `
		SELECT id, user_id, type, title, body, ref_id, read_at, created_at
		FROM notifications
		WHERE user_id = $1`
	if filter != nil && filter.UnreadOnly {
		query += " AND read_at IS NULL"
	}
	query += " ORDER BY created_at DESC"

	limit := 50
	offset := 0
	if filter != nil {
		if filter.Limit > 0 && filter.Limit <= 100 {
			limit = filter.Limit
		}
		if filter.Offset > 0 {
			offset = filter.Offset
		}
	}
	args = append(args, limit)
	query += " LIMIT $" + strconv.Itoa(len(args))
	args = append(args, offset)
	query += " OFFSET $" + strconv.Itoa(len(args))

	var notifications []*notification.Notification
	if err := r.db.DB.SelectContext(ctx, &notifications, query, args...); err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"user_id": userID}).WithError(err).Error("db: failed to list notifications")
		}
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	return notifications, nil
}

// CountUnread counts a user's unread notifications
func (r *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read_at IS NULL`
	if err := r.db.DB.GetContext(ctx, &count, query, userID); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead marks one notification read; the user scope prevents marking
// someone else's rows.
func (r *notificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	result, err := r.db.DB.ExecContext(ctx,
		`UPDATE notifications SET read_at = NOW() WHERE id = $1 AND user_id = $2 AND read_at IS NULL`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("notification %s not found or already read", id)
	}
	return nil
}

// MarkAllRead marks all of a user's notifications read
func (r *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.DB.ExecContext(ctx,
		`UPDATE notifications SET read_at = NOW() WHERE user_id = $1 AND read_at IS NULL`, userID)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return nil
}

// DeleteReadBefore prunes read notifications older than cutoff
func (r *notificationRepository) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.DB.ExecContext(ctx,
		`DELETE FROM notifications WHERE read_at IS NOT NULL AND created_at < $1`, cutoff)
	if err != nil {
		if r.logger != nil {
			r.logger.WithError(err).Error("db: failed to prune notifications")
		}
		return 0, fmt.Errorf("failed to prune notifications: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}
