package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	impl "github.com/chefpantry/chefpantry/internal/application/services"
	"github.com/chefpantry/chefpantry/internal/core/domain/notification"
	"github.com/chefpantry/chefpantry/test/mocks"
)

func TestNotificationService_NotifyStoresAndPublishes(t *testing.T) {
	userID := uuid.New()
	var stored *notification.Notification
	repo := &mocks.NotificationRepositoryMock{
		CreateFn: func(ctx context.Context, n *notification.Notification) error {
			stored = n
			return nil
		},
	}
	var gotChannel string
	var gotPayload []byte
	publisher := &mocks.EventPublisherMock{
		PublishFn: func(ctx context.Context, channel string, payload []byte) error {
			gotChannel = channel
			gotPayload = payload
			return nil
		},
	}
	svc := impl.NewNotificationService(repo, publisher, logrus.New())
	defer svc.Stop()

	refID := uuid.New()
	err := svc.Notify(context.Background(), userID, notification.TypeInvoicePaid, "Invoice paid", "Invoice INV-000001 has been paid", &refID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, fmt.Sprintf("notify:user:%s", userID), gotChannel)

	var published notification.Notification
	require.NoError(t, json.Unmarshal(gotPayload, &published))
	require.Equal(t, stored.ID, published.ID)
	require.Equal(t, notification.TypeInvoicePaid, published.Type)
}

func TestNotificationService_NotifySurvivesPublishFailure(t *testing.T) {
	repo := &mocks.NotificationRepositoryMock{}
	publisher := &mocks.EventPublisherMock{
		PublishFn: func(ctx context.Context, channel string, payload []byte) error {
			return fmt.Errorf("broker down")
		},
	}
	svc := impl.NewNotificationService(repo, publisher, logrus.New())
	defer svc.Stop()

	err := svc.Notify(context.Background(), uuid.New(), notification.TypeGigCancelled, "Gig cancelled", "", nil)
	require.NoError(t, err)
}

func TestNotificationService_NotifyFailsWhenStoreFails(t *testing.T) {
	repo := &mocks.NotificationRepositoryMock{
		CreateFn: func(ctx context.Context, n *notification.Notification) error {
			return fmt.Errorf("db down")
		},
	}
	svc := impl.NewNotificationService(repo, &mocks.EventPublisherMock{}, logrus.New())
	defer svc.Stop()

	err := svc.Notify(context.Background(), uuid.New(), notification.TypeGigCancelled, "Gig cancelled", "", nil)
	require.Error(t, err)
}

func TestNotificationService_ListClampsPaging(t *testing.T) {
	var gotFilter *notification.Filter
	repo := &mocks.NotificationRepositoryMock{
		ListFn: func(ctx context.Context, userID uuid.UUID, filter *notification.Filter) ([]*notification.Notification, error) {
			gotFilter = filter
			return nil, nil
		},
	}
	svc := impl.NewNotificationService(repo, &mocks.EventPublisherMock{}, logrus.New())
	defer svc.Stop()

	_, err := svc.List(context.Background(), uuid.New(), &notification.Filter{Limit: 100000, Offset: -3})
	require.NoError(t, err)
	require.NotNil(t, gotFilter)
	if gotFilter.Limit > 100 {
		t.Fatalf("limit not clamped, got %d", gotFilter.Limit)
	}
	require.Equal(t, 0, gotFilter.Offset)
}
