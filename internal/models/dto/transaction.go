package dto

import (
	"strconv"

	"github.com/jeffleon2/draftea-checkout-service/internal/models"
)

// Transaction is the subset of a Pagar.me v1 transaction the checkout relies on.
type Transaction struct {
	Object           string            `json:"object"`
	ID               int64             `json:"id"`
	Status           string            `json:"status"`
	PaymentMethod    string            `json:"payment_method"`
	Amount           int64             `json:"amount"`
	AuthorizedAmount int64             `json:"authorized_amount"`
	PaidAmount       int64             `json:"paid_amount"`
	Installments     int               `json:"installments"`
	CardLastDigits   *string           `json:"card_last_digits"`
	Card             *Card             `json:"card"`
	BoletoURL        *string           `json:"boleto_url"`
	BoletoBarcode    *string           `json:"boleto_barcode"`
	PostbackURL      string            `json:"postback_url"`
	Items            []TransactionItem `json:"items"`
}

type TransactionItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	Tangible  bool   `json:"tangible"`
}

type Card struct {
	ID         string `json:"id"`
	LastDigits string `json:"last_digits"`
	Brand      string `json:"brand"`
}

type CaptureRequest struct {
	APIKey string `json:"api_key"`
	Amount int64  `json:"amount"`
}

func (t *Transaction) TransactionID() string {
	return strconv.FormatInt(t.ID, 10)
}

// ToEntity builds the local payment record from a captured transaction.
func (t *Transaction) ToEntity(items []models.ItemConfig, userID *string) *models.Payment {
	payment := &models.Payment{
		TransactionID:  t.TransactionID(),
		PaymentMethod:  models.PaymentMethod(t.PaymentMethod),
		Amount:         t.AuthorizedAmount,
		Installments:   t.Installments,
		CardLastDigits: t.CardLastDigits,
		BoletoURL:      t.BoletoURL,
		BoletoBarcode:  t.BoletoBarcode,
		UserID:         userID,
		Items:          items,
		Notifications: []models.PaymentNotification{
			{Status: models.PaymentStatus(t.Status)},
		},
	}
	if t.Card != nil {
		cardID := t.Card.ID
		payment.CardID = &cardID
		if payment.CardLastDigits == nil && t.Card.LastDigits != "" {
			lastDigits := t.Card.LastDigits
			payment.CardLastDigits = &lastDigits
		}
	}
	return payment
}
