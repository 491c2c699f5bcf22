package service

import (
	"github.com/jeffleon2/draftea-checkout-service/internal/models"
	"github.com/jeffleon2/draftea-checkout-service/internal/models/dto"
)

// ValidateTransaction checks an authorized transaction against the local item
// prices and the form config of the checkout item. configured maps item slugs
// to their configs. It returns the configs of the transaction items in order.
func ValidateTransaction(
	transaction *dto.Transaction,
	form *models.FormConfig,
	configured map[string]models.ItemConfig,
) ([]models.ItemConfig, error) {
	if models.PaymentStatus(transaction.Status) != models.StatusAuthorized {
		return nil, rejectf(ReasonStatus, "Transação %d com status %s não pode ser capturada", transaction.ID, transaction.Status)
	}

	if len(transaction.Items) == 0 {
		return nil, rejectf(ReasonNoItems, "Transação %d não possui itens", transaction.ID)
	}

	items := make([]models.ItemConfig, 0, len(transaction.Items))
	var expected int64
	for _, item := range transaction.Items {
		config, ok := configured[item.ID]
		if !ok {
			return nil, rejectf(ReasonUnknownItem, "Item %s não encontrado", item.ID)
		}
		if item.UnitPrice < config.Price {
			return nil, rejectf(ReasonItemPrice, "Valor de item %d é menor que o esperado %d", item.UnitPrice, config.Price)
		}
		quantity := item.Quantity
		if quantity < 1 {
			quantity = 1
		}
		expected += config.Price * int64(quantity)
		items = append(items, config)
	}

	if transaction.AuthorizedAmount < expected {
		return nil, rejectf(ReasonAuthorizedAmount, "Valor autorizado %d é menor que o esperado %d", transaction.AuthorizedAmount, expected)
	}

	if !form.AcceptsMethod(models.PaymentMethod(transaction.PaymentMethod)) {
		return nil, rejectf(ReasonPaymentMethod, "Meio de pagamento %s não aceito", transaction.PaymentMethod)
	}

	if transaction.Installments > form.MaxInstallments {
		return nil, rejectf(ReasonInstallments, "Parcelamento em %d vez(es) é maior que o máximo %d", transaction.Installments, form.MaxInstallments)
	}

	if transaction.Installments > form.FreeInstallments {
		withInterest := form.CalculateAmount(expected, transaction.Installments)
		if transaction.AuthorizedAmount < withInterest {
			return nil, rejectf(
				ReasonInterest,
				"Valor autorizado %d é menor que o esperado %d com juros de %s%% em %d vez(es)",
				transaction.AuthorizedAmount, withInterest, form.InterestRate.String(), transaction.Installments,
			)
		}
	}

	return items, nil
}
