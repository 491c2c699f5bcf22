package models

import "time"

// PostbackReceivedEvent is a verified gateway postback waiting to be recorded.
type PostbackReceivedEvent struct {
	TransactionID string        `json:"transaction_id"`
	CurrentStatus PaymentStatus `json:"current_status"`
	OldStatus     PaymentStatus `json:"old_status"`
	ReceivedAt    time.Time     `json:"received_at"`
}

func (e PostbackReceivedEvent) PartitionKey() string { return e.TransactionID }
