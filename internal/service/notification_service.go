package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-checkout-service/internal/metrics"
	"github.com/jeffleon2/draftea-checkout-service/internal/models"
	"github.com/sirupsen/logrus"
)

// NotificationService appends gateway status changes to the payment history.
type NotificationService struct {
	Payments  PaymentRepo
	Publisher Publisher
}

func NewNotificationService(payments PaymentRepo, publisher Publisher) *NotificationService {
	return &NotificationService{
		Payments:  payments,
		Publisher: publisher,
	}
}

// RecordNotification stores the postback status for its payment and publishes
// the status change. The notification keeps the postback ReceivedAt as its
// creation time, so a redelivery of the same postback is recognized: it is not
// stored twice but its event is published again, in case the first publish
// failed. Another postback repeating the latest status is ignored. Payments
// that were never captured here are reported as errors.
func (s *NotificationService) RecordNotification(ctx context.Context, event models.PostbackReceivedEvent) error {
	if !event.CurrentStatus.IsValid() {
		return fmt.Errorf("invalid status %q for transaction %s", event.CurrentStatus, event.TransactionID)
	}

	payment, err := s.Payments.GetByTransactionID(ctx, event.TransactionID)
	if err != nil {
		return fmt.Errorf("payment not found for transaction %s: %w", event.TransactionID, err)
	}

	if latest := payment.LatestNotification(); latest != nil && latest.Status == event.CurrentStatus {
		if !sameInstant(latest.CreatedAt, event.ReceivedAt) {
			logrus.Infof("Notification %s already recorded for transaction %s", event.CurrentStatus, event.TransactionID)
			return nil
		}
		return s.publishStatusChanged(ctx, payment, previousStatus(payment, 1), event.CurrentStatus)
	}

	notification := &models.PaymentNotification{
		PaymentID: payment.ID,
		Status:    event.CurrentStatus,
		CreatedAt: event.ReceivedAt,
	}
	if err := s.Payments.AddNotification(ctx, notification); err != nil {
		return err
	}

	metrics.NotificationsTotal.WithLabelValues(string(event.CurrentStatus)).Inc()

	return s.publishStatusChanged(ctx, payment, previousStatus(payment, 0), event.CurrentStatus)
}

func (s *NotificationService) publishStatusChanged(ctx context.Context, payment *models.Payment, oldStatus, status models.PaymentStatus) error {
	return s.Publisher.Publish(ctx, models.PaymentStatusChangedEventTopic, models.PaymentStatusChangedEvent{
		PaymentID:     payment.ID,
		TransactionID: payment.TransactionID,
		OldStatus:     oldStatus,
		Status:        status,
		ChangedAt:     time.Now().UTC(),
	})
}

// previousStatus is the status recorded before the last skip notifications,
// or "" when the history is shorter.
func previousStatus(payment *models.Payment, skip int) models.PaymentStatus {
	i := len(payment.Notifications) - 1 - skip
	if i < 0 {
		return ""
	}
	return payment.Notifications[i].Status
}

// sameInstant compares at the microsecond precision kept by the database.
func sameInstant(stored, received time.Time) bool {
	if received.IsZero() {
		return false
	}
	return stored.Truncate(time.Microsecond).Equal(received.Truncate(time.Microsecond))
}
