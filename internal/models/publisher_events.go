package models

import "time"

const (
	PaymentCapturedEventTopic      = "payments.captured"
	PaymentStatusChangedEventTopic = "payments.status.changed"
	PostbackReceivedEventTopic     = "pagarme.postbacks"
	PaymentsDLQTopic               = "payments.dlq"
)

type PaymentCapturedEvent struct {
	PaymentID     string        `json:"payment_id"`
	TransactionID string        `json:"transaction_id"`
	Method        PaymentMethod `json:"method"`
	Amount        int64         `json:"amount"`
	Installments  int           `json:"installments"`
	Status        PaymentStatus `json:"status"`
	ItemSlugs     []string      `json:"item_slugs"`
	UserID        string        `json:"user_id,omitempty"`
	CapturedAt    time.Time     `json:"captured_at"`
}

type PaymentStatusChangedEvent struct {
	PaymentID     string        `json:"payment_id"`
	TransactionID string        `json:"transaction_id"`
	OldStatus     PaymentStatus `json:"old_status"`
	Status        PaymentStatus `json:"status"`
	ChangedAt     time.Time     `json:"changed_at"`
}

type DLQMessage struct {
	OriginalTopic string    `json:"original_topic"`
	Key           string    `json:"key"`
	Value         string    `json:"value"`
	Timestamp     time.Time `json:"timestamp"`
	Attempts      int       `json:"attempts"`
}

func (e PaymentCapturedEvent) PartitionKey() string      { return e.TransactionID }
func (e PaymentStatusChangedEvent) PartitionKey() string { return e.TransactionID }
