package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/chefpantry/chefpantry/internal/core/domain/notification"
	"github.com/chefpantry/chefpantry/internal/core/ports"
)

const (
	// Read notifications older than this are pruned by the retention loop.
	notificationRetention     = 90 * 24 * time.Hour
	notificationSweepInterval = 24 * time.Hour
)

type NotificationService struct {
	repo      ports.NotificationRepository
	publisher ports.EventPublisher
	logger    *logrus.Logger

	done     chan struct{}
	stopOnce sync.Once
}

func NewNotificationService(repo ports.NotificationRepository, publisher ports.EventPublisher, logger *logrus.Logger) *NotificationService {
	s := &NotificationService{
		repo:      repo,
		publisher: publisher,
		logger:    logger,
		done:      make(chan struct{}),
	}
	go s.retentionLoop()
	return s
}

func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, typ notification.Type, title, body string, refID *uuid.UUID) error {
	n := &notification.Notification{
		ID:     uuid.New(),
		UserID: userID,
		Type:   typ,
		Title:  title,
		Body:   body,
		RefID:  refID,
	}

	if err := s.repo.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	// Fan-out is best-effort; a missed push is still visible in the inbox.
	if s.publisher != nil {
		payload, err := json.Marshal(n)
		if err == nil {
			channel := fmt.Sprintf("notify:user:%s", userID)
			if err := s.publisher.Publish(ctx, channel, payload); err != nil {
				if s.logger != nil {
					s.logger.WithFields(logrus.Fields{"user_id": userID}).WithError(err).Debug("failed to publish notification event")
				}
			}
		}
	}

	return nil
}

func (s *NotificationService) List(ctx context.Context, userID uuid.UUID, filter *notification.Filter) ([]*notification.Notification, error) {
	if filter == nil {
		filter = &notification.Filter{}
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultSearchLimit
	}
	if filter.Limit > maxSearchLimit {
		filter.Limit = maxSearchLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, userID, filter)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, userID, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	return s.repo.MarkAllRead(ctx, userID)
}

// Stop terminates the retention loop. Safe to call more than once.
func (s *NotificationService) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

func (s *NotificationService) retentionLoop() {
	ticker := time.NewTicker(notificationSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cutoff := time.Now().Add(-notificationRetention)
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			removed, err := s.repo.DeleteReadBefore(ctx, cutoff)
			cancel()
			if err != nil {
				if s.logger != nil {
					s.logger.WithError(err).Warn("notification retention sweep failed")
				}
				continue
			}
			if removed > 0 && s.logger != nil {
				s.logger.WithFields(logrus.Fields{"removed": removed}).Info("pruned old notifications")
			}
		case <-s.done:
			return
		}
	}
}
