package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PaymentMethod string

const (
	MethodBoleto     PaymentMethod = "boleto"
	MethodCreditCard PaymentMethod = "credit_card"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodBoleto, MethodCreditCard:
		return true
	default:
		return false
	}
}

// FormConfig holds the checkout rules shared by items: which payment methods are
// offered, how many installments are allowed and the monthly interest charged above
// the free installments.
type FormConfig struct {
	ID               string          `gorm:"primaryKey" json:"id"`
	Name             string          `gorm:"uniqueIndex;not null" json:"name"`
	MaxInstallments  int             `gorm:"not null;default:12" json:"max_installments"`
	FreeInstallments int             `gorm:"not null;default:1" json:"free_installments"`
	InterestRate     decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"interest_rate"`
	PaymentMethods   string          `gorm:"not null;default:'credit_card,boleto'" json:"payment_methods"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

func (f *FormConfig) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == "" {
		f.ID = uuid.New().String()
	}

	return
}

// CalculateAmount returns the amount, in cents, the customer must authorize when
// paying in the given number of installments. Installments above FreeInstallments
// are charged simple monthly interest and the result is rounded half to even.
func (f *FormConfig) CalculateAmount(amount int64, installments int) int64 {
	if installments <= f.FreeInstallments {
		return amount
	}
	rate := f.InterestRate.Div(decimal.NewFromInt(100)).Mul(decimal.NewFromInt(int64(installments)))
	return decimal.NewFromInt(amount).Mul(decimal.NewFromInt(1).Add(rate)).RoundBank(0).IntPart()
}

func (f *FormConfig) AcceptsMethod(method PaymentMethod) bool {
	for _, m := range f.Methods() {
		if m == method {
			return true
		}
	}
	return false
}

func (f *FormConfig) Methods() []PaymentMethod {
	var methods []PaymentMethod
	for _, m := range strings.Split(f.PaymentMethods, ",") {
		m = strings.TrimSpace(m)
		if m != "" {
			methods = append(methods, PaymentMethod(m))
		}
	}
	return methods
}

type InstallmentOption struct {
	Installments int   `json:"installments"`
	Total        int64 `json:"total"`
	Value        int64 `json:"value"`
	WithInterest bool  `json:"with_interest"`
}

// InstallmentOptions lists every installment plan from 1 to MaxInstallments.
func (f *FormConfig) InstallmentOptions(amount int64) []InstallmentOption {
	options := make([]InstallmentOption, 0, f.MaxInstallments)
	for n := 1; n <= f.MaxInstallments; n++ {
		total := f.CalculateAmount(amount, n)
		options = append(options, InstallmentOption{
			Installments: n,
			Total:        total,
			Value:        decimal.NewFromInt(total).Div(decimal.NewFromInt(int64(n))).RoundBank(0).IntPart(),
			WithInterest: n > f.FreeInstallments,
		})
	}
	return options
}
