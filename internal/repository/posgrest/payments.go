package posgrest

import (
	"context"

	"github.com/jeffleon2/draftea-checkout-service/internal/models"
	"gorm.io/gorm"
)

type PaymentRepository struct {
	*repository[models.Payment]
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{New[models.Payment](db)}
}

// Create stores the payment with its notifications and links it to the
// already persisted item configs without rewriting them.
func (r *PaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit("Items.*").Create(payment).Error
	})
}

// GetByTransactionID loads a payment with its items and notification history.
func (r *PaymentRepository) GetByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Notifications", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("transaction_id = ?", transactionID).
		First(&payment).Error
	if err != nil {
		return nil, translate(err)
	}
	return &payment, nil
}

func (r *PaymentRepository) AddNotification(ctx context.Context, notification *models.PaymentNotification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}
