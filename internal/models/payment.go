package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

type PaymentStatus string

// Statuses reported by the gateway for a transaction.
const (
	StatusProcessing     PaymentStatus = "processing"
	StatusAuthorized     PaymentStatus = "authorized"
	StatusPaid           PaymentStatus = "paid"
	StatusRefunded       PaymentStatus = "refunded"
	StatusWaitingPayment PaymentStatus = "waiting_payment"
	StatusPendingRefund  PaymentStatus = "pending_refund"
	StatusRefused        PaymentStatus = "refused"
	StatusChargedback    PaymentStatus = "chargedback"
	StatusAnalyzing      PaymentStatus = "analyzing"
	StatusPendingReview  PaymentStatus = "pending_review"
)

func (s PaymentStatus) IsValid() bool {
	switch s {
	case StatusProcessing, StatusAuthorized, StatusPaid, StatusRefunded, StatusWaitingPayment,
		StatusPendingRefund, StatusRefused, StatusChargedback, StatusAnalyzing, StatusPendingReview:
		return true
	default:
		return false
	}
}

type Payment struct {
	ID             string                `gorm:"primaryKey" json:"id"`
	TransactionID  string                `gorm:"uniqueIndex;not null" json:"transaction_id"`
	PaymentMethod  PaymentMethod         `gorm:"not null" json:"payment_method"`
	Amount         int64                 `gorm:"not null" json:"amount"`
	CardID         *string               `json:"card_id"`
	CardLastDigits *string               `json:"card_last_digits"`
	Installments   int                   `gorm:"not null;default:1" json:"installments"`
	BoletoURL      *string               `json:"boleto_url"`
	BoletoBarcode  *string               `json:"boleto_barcode"`
	UserID         *string               `gorm:"index" json:"user_id,omitempty"`
	Items          []ItemConfig          `gorm:"many2many:payment_items;" json:"items"`
	Notifications  []PaymentNotification `json:"notifications"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	return
}

// LatestNotification returns the most recent notification, or nil when the
// history is empty. Notifications are expected in creation order.
func (p *Payment) LatestNotification() *PaymentNotification {
	if len(p.Notifications) == 0 {
		return nil
	}
	return &p.Notifications[len(p.Notifications)-1]
}

type PaymentNotification struct {
	ID        string        `gorm:"primaryKey" json:"id"`
	PaymentID string        `gorm:"index;not null" json:"payment_id"`
	Status    PaymentStatus `gorm:"not null" json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

func (n *PaymentNotification) BeforeCreate(tx *gorm.DB) (err error) {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	return
}

// CaptureResult is what a successful capture hands to the confirmation page.
type CaptureResult struct {
	Payment      *Payment
	Notification *PaymentNotification
	Item         *ItemConfig
}
