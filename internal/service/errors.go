package service

import "fmt"

type RejectReason string

const (
	ReasonStatus           RejectReason = "status"
	ReasonNoItems          RejectReason = "no_items"
	ReasonUnknownItem      RejectReason = "unknown_item"
	ReasonItemPrice        RejectReason = "item_price"
	ReasonAuthorizedAmount RejectReason = "authorized_amount"
	ReasonPaymentMethod    RejectReason = "payment_method"
	ReasonInstallments     RejectReason = "installments"
	ReasonInterest         RejectReason = "interest"
)

// CaptureError means the gateway transaction does not match what the checkout
// expects and must not be captured.
type CaptureError struct {
	Reason  RejectReason
	Message string
}

func (e *CaptureError) Error() string {
	return e.Message
}

func rejectf(reason RejectReason, format string, args ...interface{}) *CaptureError {
	return &CaptureError{Reason: reason, Message: fmt.Sprintf(format, args...)}
}
