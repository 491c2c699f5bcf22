package service_test

import (
	"testing"

	"github.com/jeffleon2/draftea-checkout-service/internal/models"
	"github.com/jeffleon2/draftea-checkout-service/internal/models/dto"
	"github.com/jeffleon2/draftea-checkout-service/internal/service"
	"github.com/jeffleon2/draftea-checkout-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configured(items ...*models.ItemConfig) map[string]models.ItemConfig {
	m := make(map[string]models.ItemConfig, len(items))
	for _, item := range items {
		m[item.Slug] = *item
	}
	return m
}

func TestValidateTransaction(t *testing.T) {
	checkout := testutil.NewCheckout()

	tests := []struct {
		name    string
		tamper  func(tx *dto.Transaction)
		reason  service.RejectReason
		message string
	}{
		{
			name:    "refused transaction",
			tamper:  func(tx *dto.Transaction) { tx.Status = string(models.StatusRefused) },
			reason:  service.ReasonStatus,
			message: "Transação 7956027 com status refused não pode ser capturada",
		},
		{
			name:    "no items",
			tamper:  func(tx *dto.Transaction) { tx.Items = nil },
			reason:  service.ReasonNoItems,
			message: "Transação 7956027 não possui itens",
		},
		{
			name:    "unknown item",
			tamper:  func(tx *dto.Transaction) { tx.Items[0].ID = "ghost-item" },
			reason:  service.ReasonUnknownItem,
			message: "Item ghost-item não encontrado",
		},
		{
			name:    "item price below config",
			tamper:  func(tx *dto.Transaction) { tx.Items[0].UnitPrice = 1 },
			reason:  service.ReasonItemPrice,
			message: "Valor de item 1 é menor que o esperado 9999",
		},
		{
			name: "quantity raises expected amount",
			tamper: func(tx *dto.Transaction) {
				tx.Items[0].Quantity = 2
			},
			reason:  service.ReasonAuthorizedAmount,
			message: "Valor autorizado 9999 é menor que o esperado 19998",
		},
		{
			name:    "payment method not offered",
			tamper:  func(tx *dto.Transaction) { tx.PaymentMethod = string(models.MethodCreditCard) },
			reason:  service.ReasonPaymentMethod,
			message: "Meio de pagamento credit_card não aceito",
		},
		{
			name:    "too many installments",
			tamper:  func(tx *dto.Transaction) { tx.Installments = 24 },
			reason:  service.ReasonInstallments,
			message: "Parcelamento em 24 vez(es) é maior que o máximo 12",
		},
		{
			name: "interest not charged",
			tamper: func(tx *dto.Transaction) {
				tx.Installments = 2
				tx.AuthorizedAmount = 10000
			},
			reason:  service.ReasonInterest,
			message: "Valor autorizado 10000 é menor que o esperado 10331 com juros de 1.66% em 2 vez(es)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transaction := testutil.AuthorizedTransaction(checkout.Item)
			tt.tamper(transaction)

			items, err := service.ValidateTransaction(transaction, checkout.Form, configured(checkout.Item, checkout.Upsell))

			assert.Nil(t, items)
			var captureErr *service.CaptureError
			require.ErrorAs(t, err, &captureErr)
			assert.Equal(t, tt.reason, captureErr.Reason)
			assert.Equal(t, tt.message, captureErr.Error())
		})
	}
}

func TestValidateTransaction_Accepts(t *testing.T) {
	checkout := testutil.NewCheckout()

	t.Run("single installment at list price", func(t *testing.T) {
		transaction := testutil.AuthorizedTransaction(checkout.Item)

		items, err := service.ValidateTransaction(transaction, checkout.Form, configured(checkout.Item))

		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, checkout.Item.ID, items[0].ID)
	})

	t.Run("installments with interest paid", func(t *testing.T) {
		transaction := testutil.AuthorizedTransaction(checkout.Item)
		transaction.Installments = 12
		transaction.AuthorizedAmount = 11991

		_, err := service.ValidateTransaction(transaction, checkout.Form, configured(checkout.Item))

		assert.NoError(t, err)
	})

	t.Run("item and upsell bought together", func(t *testing.T) {
		transaction := testutil.AuthorizedTransaction(checkout.Item)
		transaction.Items = append(transaction.Items, dto.TransactionItem{
			ID: checkout.Upsell.Slug, UnitPrice: checkout.Upsell.Price, Quantity: 1,
		})
		transaction.AuthorizedAmount = checkout.Item.Price + checkout.Upsell.Price

		items, err := service.ValidateTransaction(transaction, checkout.Form, configured(checkout.Item, checkout.Upsell))

		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("higher price than configured", func(t *testing.T) {
		transaction := testutil.AuthorizedTransaction(checkout.Item)
		transaction.Items[0].UnitPrice = checkout.Item.Price + 100
		transaction.AuthorizedAmount = checkout.Item.Price + 100

		_, err := service.ValidateTransaction(transaction, checkout.Form, configured(checkout.Item))

		assert.NoError(t, err)
	})
}
