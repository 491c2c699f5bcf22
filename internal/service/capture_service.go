package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jeffleon2/draftea-checkout-service/internal/metrics"
	"github.com/jeffleon2/draftea-checkout-service/internal/models"
	"github.com/jeffleon2/draftea-checkout-service/internal/models/dto"
	"github.com/sirupsen/logrus"
)

// Gateway is the remote payment gateway holding the transactions.
type Gateway interface {
	GetTransaction(ctx context.Context, id string) (*dto.Transaction, error)
	CaptureTransaction(ctx context.Context, id string, amount int64) (*dto.Transaction, error)
}

// PaymentRepo defines the persistence operations for captured payments.
type PaymentRepo interface {
	Create(ctx context.Context, payment *models.Payment) error
	GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	AddNotification(ctx context.Context, notification *models.PaymentNotification) error
}

// ItemRepo defines the lookup operations for item configs.
type ItemRepo interface {
	GetBySlug(ctx context.Context, slug string) (*models.ItemConfig, error)
	GetBySlugs(ctx context.Context, slugs []string) ([]models.ItemConfig, error)
}

// Publisher defines the interface for publishing events to Kafka topics.
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

// Locker hands out a lock per key. The returned func releases it.
type Locker interface {
	Lock(ctx context.Context, key string) (func(), error)
}

// CaptureService confirms gateway transactions for the checkout. A transaction
// is only captured once it matches the configured prices, installments and
// interest; the result is stored as a local payment with its notification history.
type CaptureService struct {
	Gateway   Gateway
	Payments  PaymentRepo
	Items     ItemRepo
	Publisher Publisher
	Locker    Locker
}

func NewCaptureService(gateway Gateway, payments PaymentRepo, items ItemRepo, publisher Publisher, locker Locker) *CaptureService {
	return &CaptureService{
		Gateway:   gateway,
		Payments:  payments,
		Items:     items,
		Publisher: publisher,
		Locker:    locker,
	}
}

// Capture validates and captures the transaction token bought through the item
// identified by slug.
//
// A token already captured is answered from the local record without calling the
// gateway again. Mismatches between the transaction and the local config are
// returned as *CaptureError and nothing is captured or stored.
func (s *CaptureService) Capture(ctx context.Context, slug, token string, userID *string) (*models.CaptureResult, error) {
	item, err := s.Items.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", slug, err)
	}
	if item.DefaultConfig == nil {
		logrus.Errorf("Item %s has no form config", slug)
		return nil, fmt.Errorf("form config of item %s: %w", slug, models.ErrNotFound)
	}

	unlock, err := s.Locker.Lock(ctx, "capture:"+token)
	if err != nil {
		return nil, fmt.Errorf("error locking transaction %s: %w", token, err)
	}
	defer unlock()

	existing, err := s.Payments.GetByTransactionID(ctx, token)
	switch {
	case err == nil:
		metrics.CapturesTotal.WithLabelValues("repeated").Inc()
		return &models.CaptureResult{Payment: existing, Notification: existing.LatestNotification(), Item: item}, nil
	case !errors.Is(err, models.ErrNotFound):
		return nil, fmt.Errorf("error loading payment %s: %w", token, err)
	}

	transaction, err := s.Gateway.GetTransaction(ctx, token)
	if err != nil {
		metrics.CapturesTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("error fetching transaction %s: %w", token, err)
	}

	items, err := s.validate(ctx, transaction, item)
	if err != nil {
		var captureErr *CaptureError
		if errors.As(err, &captureErr) {
			metrics.CapturesTotal.WithLabelValues("rejected").Inc()
			metrics.CaptureRejections.WithLabelValues(string(captureErr.Reason)).Inc()
		}
		return nil, err
	}

	captured, err := s.Gateway.CaptureTransaction(ctx, token, transaction.AuthorizedAmount)
	if err != nil {
		metrics.CapturesTotal.WithLabelValues("failed").Inc()
		return nil, fmt.Errorf("error capturing transaction %s: %w", token, err)
	}
	if captured.ID == 0 {
		captured.ID = transaction.ID
	}
	if captured.Installments == 0 {
		captured.Installments = transaction.Installments
	}
	if captured.AuthorizedAmount == 0 {
		captured.AuthorizedAmount = transaction.AuthorizedAmount
	}
	if captured.PaymentMethod == "" {
		captured.PaymentMethod = transaction.PaymentMethod
	}

	payment := captured.ToEntity(items, userID)
	if err := s.Payments.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("error saving payment %s: %w", token, err)
	}

	metrics.CapturesTotal.WithLabelValues("captured").Inc()
	metrics.CapturedAmounts.WithLabelValues(string(payment.PaymentMethod)).Observe(float64(payment.Amount))

	notification := payment.LatestNotification()
	s.publishCaptured(ctx, payment, notification)

	return &models.CaptureResult{Payment: payment, Notification: notification, Item: item}, nil
}

func (s *CaptureService) validate(ctx context.Context, transaction *dto.Transaction, item *models.ItemConfig) ([]models.ItemConfig, error) {
	slugs := make([]string, 0, len(transaction.Items))
	for _, i := range transaction.Items {
		slugs = append(slugs, i.ID)
	}
	found, err := s.Items.GetBySlugs(ctx, slugs)
	if err != nil {
		return nil, fmt.Errorf("error loading transaction items: %w", err)
	}

	configured := make(map[string]models.ItemConfig, len(found))
	for _, config := range found {
		configured[config.Slug] = config
	}

	return ValidateTransaction(transaction, item.DefaultConfig, configured)
}

func (s *CaptureService) publishCaptured(ctx context.Context, payment *models.Payment, notification *models.PaymentNotification) {
	slugs := make([]string, 0, len(payment.Items))
	for _, i := range payment.Items {
		slugs = append(slugs, i.Slug)
	}

	event := models.PaymentCapturedEvent{
		PaymentID:     payment.ID,
		TransactionID: payment.TransactionID,
		Method:        payment.PaymentMethod,
		Amount:        payment.Amount,
		Installments:  payment.Installments,
		ItemSlugs:     slugs,
		CapturedAt:    time.Now().UTC(),
	}
	if notification != nil {
		event.Status = notification.Status
	}
	if payment.UserID != nil {
		event.UserID = *payment.UserID
	}

	if err := s.Publisher.Publish(ctx, models.PaymentCapturedEventTopic, event); err != nil {
		logrus.Errorf("Error publishing capture of transaction %s: %s", payment.TransactionID, err.Error())
	}
}

// FindItem returns the item config with its form config and upsell.
func (s *CaptureService) FindItem(ctx context.Context, slug string) (*models.ItemConfig, error) {
	return s.Items.GetBySlug(ctx, slug)
}

// FindPayment returns the local payment for a gateway transaction id.
func (s *CaptureService) FindPayment(ctx context.Context, transactionID string) (*models.Payment, error) {
	return s.Payments.GetByTransactionID(ctx, transactionID)
}
