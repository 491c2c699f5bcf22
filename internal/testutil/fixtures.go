package testutil

import (
	"testing"

	"github.com/jeffleon2/draftea-checkout-service/internal/models"
	"github.com/jeffleon2/draftea-checkout-service/internal/models/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	TransactionID = "7956027"
	BoletoURL     = "www.some.boleto.com"
	BoletoBarcode = "123455"
	ItemPrice     = int64(9999)
)

// Checkout is the configuration used by capture tests: a boleto form allowing
// 12 installments at 1.66% with one free installment, an item and its upsell.
type Checkout struct {
	Form   *models.FormConfig
	Item   *models.ItemConfig
	Upsell *models.ItemConfig
}

func NewFormConfig() *models.FormConfig {
	return &models.FormConfig{
		ID:               "form-1",
		Name:             "default",
		MaxInstallments:  12,
		FreeInstallments: 1,
		InterestRate:     decimal.RequireFromString("1.66"),
		PaymentMethods:   "boleto",
	}
}

func NewCheckout() *Checkout {
	form := NewFormConfig()
	upsell := &models.ItemConfig{
		ID:              "item-upsell",
		Name:            "Upsell Item",
		Slug:            "upsell-item",
		Price:           ItemPrice,
		DefaultConfigID: form.ID,
		DefaultConfig:   form,
	}
	upsellID := upsell.ID
	item := &models.ItemConfig{
		ID:              "item-payment",
		Name:            "Payment Item",
		Slug:            "payment-item",
		Price:           ItemPrice,
		DefaultConfigID: form.ID,
		DefaultConfig:   form,
		UpsellID:        &upsellID,
		Upsell:          upsell,
	}
	return &Checkout{Form: form, Item: item, Upsell: upsell}
}

// SeedCheckout persists NewCheckout and returns it.
func SeedCheckout(t *testing.T, db *gorm.DB) *Checkout {
	t.Helper()

	checkout := NewCheckout()
	require.NoError(t, db.Create(&models.FormConfig{
		ID:               checkout.Form.ID,
		Name:             checkout.Form.Name,
		MaxInstallments:  checkout.Form.MaxInstallments,
		FreeInstallments: checkout.Form.FreeInstallments,
		InterestRate:     checkout.Form.InterestRate,
		PaymentMethods:   checkout.Form.PaymentMethods,
	}).Error)
	for _, item := range []*models.ItemConfig{checkout.Upsell, checkout.Item} {
		require.NoError(t, db.Omit("DefaultConfig", "Upsell").Create(&models.ItemConfig{
			ID:              item.ID,
			Name:            item.Name,
			Slug:            item.Slug,
			Price:           item.Price,
			Tangible:        item.Tangible,
			DefaultConfigID: item.DefaultConfigID,
			UpsellID:        item.UpsellID,
		}).Error)
	}
	return checkout
}

// AuthorizedTransaction is the gateway view of a boleto transaction for item,
// before capture.
func AuthorizedTransaction(item *models.ItemConfig) *dto.Transaction {
	return &dto.Transaction{
		Object:           "transaction",
		ID:               7956027,
		Status:           string(models.StatusAuthorized),
		PaymentMethod:    string(models.MethodBoleto),
		AuthorizedAmount: item.Price,
		Installments:     1,
		Items: []dto.TransactionItem{
			{ID: item.Slug, Title: item.Name, UnitPrice: item.Price, Quantity: 1},
		},
	}
}

// CapturedTransaction is the gateway answer to capturing AuthorizedTransaction.
func CapturedTransaction(item *models.ItemConfig) *dto.Transaction {
	transaction := AuthorizedTransaction(item)
	transaction.Status = string(models.StatusWaitingPayment)
	transaction.Amount = item.Price
	boletoURL, boletoBarcode := BoletoURL, BoletoBarcode
	transaction.BoletoURL = &boletoURL
	transaction.BoletoBarcode = &boletoBarcode
	return transaction
}
